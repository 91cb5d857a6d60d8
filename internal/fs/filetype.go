package fs

import "os"

// FileType is the closed set of entry kinds the preview distinguishes.
type FileType uint8

const (
	TypeOther FileType = iota
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeSocket
	TypeFifo
	TypeBlockDevice
	TypeCharDevice
)

// TypeFromMode maps the type bits of mode to a FileType. Symlinks are not
// followed.
func TypeFromMode(mode os.FileMode) FileType {
	switch {
	case mode.IsDir():
		return TypeDirectory
	case mode&os.ModeSymlink != 0:
		return TypeSymlink
	case mode&os.ModeSocket != 0:
		return TypeSocket
	case mode&os.ModeNamedPipe != 0:
		return TypeFifo
	case mode&os.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&os.ModeDevice != 0:
		return TypeBlockDevice
	case mode.IsRegular():
		return TypeRegular
	default:
		return TypeOther
	}
}

func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	case TypeFifo:
		return "fifo"
	case TypeBlockDevice:
		return "block device"
	case TypeCharDevice:
		return "char device"
	default:
		return "other"
	}
}
