package contactbook

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrCorrupt is returned when a data file does not decode to a contact list.
var ErrCorrupt = errors.New("corrupt contact data")

// Wire layout of the collection:
//
//	u64 count
//	count × { u64 len, name bytes, u64 len, phone bytes, u64 len, email bytes }
//
// All integers are little-endian. This matches the bincode layout written by
// earlier versions of the tool, so existing data.bin files keep working.

// EncodeContacts writes the whole collection to w.
func EncodeContacts(w io.Writer, contacts []Contact) error {
	var buf bytes.Buffer
	putUint64(&buf, uint64(len(contacts)))
	for _, c := range contacts {
		putString(&buf, c.Name)
		putString(&buf, c.Phone)
		putString(&buf, c.Email)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write contacts: %w", err)
	}
	return nil
}

// DecodeContacts reads a whole collection from r. The input must contain
// exactly one encoded list and nothing after it.
func DecodeContacts(r io.Reader) ([]Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	return UnmarshalContacts(data)
}

// UnmarshalContacts decodes data produced by EncodeContacts.
func UnmarshalContacts(data []byte) ([]Contact, error) {
	d := decoder{data: data}
	n, err := d.readUint64()
	if err != nil {
		return nil, err
	}
	// every contact needs at least three length prefixes
	if n > uint64(d.remaining()/24) {
		return nil, fmt.Errorf("%w: count %d exceeds input size", ErrCorrupt, n)
	}
	contacts := make([]Contact, 0, n)
	for i := uint64(0); i < n; i++ {
		var c Contact
		if c.Name, err = d.readString(); err != nil {
			return nil, fmt.Errorf("contact %d name: %w", i, err)
		}
		if c.Phone, err = d.readString(); err != nil {
			return nil, fmt.Errorf("contact %d phone: %w", i, err)
		}
		if c.Email, err = d.readString(); err != nil {
			return nil, fmt.Errorf("contact %d email: %w", i, err)
		}
		contacts = append(contacts, c)
	}
	if d.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, d.remaining())
	}
	return contacts, nil
}

func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func putString(buf *bytes.Buffer, s string) {
	putUint64(buf, uint64(len(s)))
	buf.WriteString(s)
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.off
}

func (d *decoder) readUint64() (uint64, error) {
	if d.remaining() < 8 {
		return 0, fmt.Errorf("%w: unexpected end of data", ErrCorrupt)
	}
	v := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += 8
	return v, nil
}

func (d *decoder) readString() (string, error) {
	n, err := d.readUint64()
	if err != nil {
		return "", err
	}
	if n > uint64(d.remaining()) {
		return "", fmt.Errorf("%w: string length %d exceeds input size", ErrCorrupt, n)
	}
	b := d.data[d.off : d.off+int(n)]
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrCorrupt)
	}
	d.off += int(n)
	return string(b), nil
}
