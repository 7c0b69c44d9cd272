package vm

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ReadImage decodes a program image: a big endian origin word followed by
// big endian program words. A trailing odd byte is ignored.
func ReadImage(r io.Reader) (origin Word, words []Word, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) < 2 {
		return 0, nil, ErrImageTooShort
	}

	/* the LC-3 is big endian, every word is swapped to host order here */
	origin = Word(binary.BigEndian.Uint16(data))
	words = make([]Word, 0, (len(data)-2)/2)
	for i := 2; i+1 < len(data); i += 2 {
		words = append(words, Word(binary.BigEndian.Uint16(data[i:])))
	}
	return origin, words, nil
}

// LoadImage places an image into memory at its origin. Memory is not touched
// when the image can not be decoded.
func (vm *VM) LoadImage(r io.Reader) error {
	origin, words, err := ReadImage(r)
	if err != nil {
		return err
	}

	stored := vm.memory.Load(origin, words)
	entry := vm.log.WithFields(logrus.Fields{
		"origin": fmt.Sprintf("0x%04x", origin),
		"words":  stored,
	})
	if stored < len(words) {
		entry.WithField("dropped", len(words)-stored).Warn("image truncated at end of memory")
	} else {
		entry.Info("image loaded")
	}
	return nil
}

// LoadImageFile loads the image stored in the named file.
func (vm *VM) LoadImageFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("opening image '%s': %w", name, err)
	}
	defer file.Close()

	if err := vm.LoadImage(file); err != nil {
		return fmt.Errorf("loading image '%s': %w", name, err)
	}
	return nil
}
