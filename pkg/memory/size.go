package memory

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/Manu343726/sizeof/pkg/utils"
)

var ErrUnknownMethod = errors.New("unknown size computation method")

// Method selects how the storage size of a variable is computed
type Method string

const (
	// Uses the builtin size query (unsafe.Sizeof)
	MethodSizeof Method = "sizeof"
	// Measures the distance between two consecutive array elements
	MethodStride Method = "stride"
)

// All supported methods, default first
var Methods = []Method{MethodSizeof, MethodStride}

// Parses a method name. The empty string selects the default method.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return MethodSizeof, nil
	}

	for _, method := range Methods {
		if strings.EqualFold(name, string(method)) {
			return method, nil
		}
	}

	return "", utils.MakeError(ErrUnknownMethod, "'%v' (expected one of %v)", name, utils.FormatSlice(Methods, ", "))
}

// Returns the number of bytes the variable pointed by v occupies
func Of[T any](v *T) uintptr {
	return unsafe.Sizeof(*v)
}

// Returns the number of bytes a variable of the type of *v occupies,
// computed as the difference between the addresses of two consecutive
// elements of a [2]T array. Only the type of v is used, never its address.
func Stride[T any](v *T) uintptr {
	var pair [2]T

	first := uintptr(unsafe.Pointer(&pair[0]))
	next := uintptr(unsafe.Pointer(&pair[1]))

	return next - first
}

// Computes the size of the variable pointed by v with the given method
func SizeOf[T any](method Method, v *T) uintptr {
	switch method {
	case MethodStride:
		return Stride(v)
	default:
		return Of(v)
	}
}
