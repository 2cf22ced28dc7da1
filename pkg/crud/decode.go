package crud

import (
	"net/url"
	"sync"

	"github.com/go-playground/form"
)

var formDecoder = sync.OnceValue(func() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	return d
})

// DecodeDraft maps a draft onto a typed DTO using its `form` tags. Dotted
// draft paths address nested DTO structs; section lists address DTO slices.
func DecodeDraft(d Draft, dst any) error {
	return formDecoder().Decode(dst, d.Values())
}

// DecodeValues maps posted form values onto a typed DTO, for HTTP handlers
// that skip the draft stage.
func DecodeValues(values url.Values, dst any) error {
	return formDecoder().Decode(dst, values)
}
