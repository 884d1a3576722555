package cli

import (
	"io"
	"os"
)

// openInput returns a reader for args[0] if present and not "-", otherwise
// stdin. The returned closer must be invoked by the caller when non-nil.
func openInput(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func readAllInput(args []string) ([]byte, error) {
	r, closer, err := openInput(args)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	return io.ReadAll(r)
}
