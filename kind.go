package ffitoolkit

// ErrorKind is the error discriminant carried in an ExternError. It crosses
// the boundary as a plain int32, so the values below are append-only: never
// reorder or remove, only add at the end.
type ErrorKind int32

const (
	KindOther ErrorKind = iota
	KindAuthentication
	KindValidation
	KindNotFound
	KindPermission
	KindTimeout
	KindNetwork
	KindInvalidArgument
	KindIO
)

var kindNames = [...]string{
	KindOther:           "Other",
	KindAuthentication:  "AuthenticationError",
	KindValidation:      "ValidationError",
	KindNotFound:        "NotFoundError",
	KindPermission:      "PermissionError",
	KindTimeout:         "TimeoutError",
	KindNetwork:         "NetworkError",
	KindInvalidArgument: "InvalidArgumentError",
	KindIO:              "IoError",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// KindFromName maps a kind name back to its discriminant. Unrecognized
// names map to KindOther, mirroring its catch-all role.
func KindFromName(name string) ErrorKind {
	for k, n := range kindNames {
		if n == name {
			return ErrorKind(k)
		}
	}
	return KindOther
}
