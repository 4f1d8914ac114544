package contactbook

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, contacts []Contact) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeContacts(&buf, contacts))
	return buf.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		contacts []Contact
	}{
		{"empty", []Contact{}},
		{"single", []Contact{NewContact("Ann", "555-1000", "ann@x.com")}},
		{"order preserved", []Contact{
			NewContact("Bo", "555-2000", "bo@x.com"),
			NewContact("Ann", "555-1000", "ann@x.com"),
			NewContact("Bo", "555-2000", "bo@x.com"),
		}},
		{"empty fields", []Contact{NewContact("", "", "")}},
		{"raw input kept", []Contact{NewContact("  Zoë \n", "+49 (0) 30\r\n", "ünï@example.com")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContacts(bytes.NewReader(encode(t, tt.contacts)))
			require.NoError(t, err)
			assert.Equal(t, tt.contacts, got)
		})
	}
}

func TestEncodeContacts_Layout(t *testing.T) {
	data := encode(t, []Contact{NewContact("A", "12", "")})

	want := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0, 'A',
		2, 0, 0, 0, 0, 0, 0, 0, '1', '2',
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, want, data)
}

func TestUnmarshalContacts_Corrupt(t *testing.T) {
	valid := encode(t, []Contact{NewContact("Ann", "555-1000", "ann@x.com")})

	hugeCount := make([]byte, 8)
	binary.LittleEndian.PutUint64(hugeCount, 1<<62)

	hugeString := make([]byte, 0, 32)
	hugeString = binary.LittleEndian.AppendUint64(hugeString, 1)
	hugeString = binary.LittleEndian.AppendUint64(hugeString, 1<<40)
	hugeString = append(hugeString, make([]byte, 16)...)

	badUTF8 := make([]byte, 0, 40)
	badUTF8 = binary.LittleEndian.AppendUint64(badUTF8, 1)
	badUTF8 = binary.LittleEndian.AppendUint64(badUTF8, 1)
	badUTF8 = append(badUTF8, 0xff)
	badUTF8 = binary.LittleEndian.AppendUint64(badUTF8, 0)
	badUTF8 = binary.LittleEndian.AppendUint64(badUTF8, 0)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty file", nil},
		{"short count", []byte{1, 0, 0}},
		{"truncated", valid[:len(valid)-3]},
		{"trailing bytes", append(append([]byte{}, valid...), 0)},
		{"count exceeds input", hugeCount},
		{"string length exceeds input", hugeString},
		{"invalid utf-8", badUTF8},
		{"foreign format", []byte("BEGIN:VCARD\r\nVERSION:4.0\r\nEND:VCARD\r\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalContacts(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
		})
	}
}
