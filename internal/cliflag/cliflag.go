// Package cliflag provides validated flag.Value types for the logwords
// commands.
package cliflag

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// KVar returns a flag.Value storing a non-negative word count in k.
func KVar(k *uint) *kVar {
	return &kVar{k}
}

type kVar struct {
	k *uint
}

func (v *kVar) String() string {
	if v.k == nil {
		return ""
	}

	return fmt.Sprintf("%d", *v.k)
}

func (v *kVar) Set(s string) error {
	val, err := ParseK(s)
	if err != nil {
		return err
	}

	*v.k = val
	return nil
}

// ParseK parses a non-negative decimal word count.
func ParseK(s string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, errors.Errorf("bad word count %q, must be a non-negative integer", s)
	}
	return uint(val), nil
}

// PortVar returns a flag.Value storing a TCP port in port.
func PortVar(port *int) *portVar {
	return &portVar{port}
}

type portVar struct {
	port *int
}

func (v *portVar) String() string {
	if v.port == nil {
		return ""
	}

	return strconv.Itoa(*v.port)
}

func (v *portVar) Set(s string) error {
	val, err := ParsePort(s)
	if err != nil {
		return err
	}

	*v.port = val
	return nil
}

// ParsePort parses a TCP port number in [1:65535].
func ParsePort(s string) (int, error) {
	const minPort, maxPort = 1, 65535

	val, err := strconv.Atoi(s)
	if err != nil || val < minPort || val > maxPort {
		return 0, errors.Errorf("bad port %q, must be in [%d:%d]", s, minPort, maxPort)
	}
	return val, nil
}

// FromEnv sets v from the environment variable name when it is set and not
// empty. A value v rejects is reported with the variable name.
func FromEnv(v flag.Value, name string) error {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return nil
	}
	if err := v.Set(s); err != nil {
		return errors.Wrapf(err, "bad %s", name)
	}
	return nil
}
