// Package typemap translates data type tags between the server protocol
// enumeration (wire.DataType) and the client enumeration (format.DataType).
//
// Both directions are total over the six supported types and are exact
// inverses of each other. Any other tag is rejected with an
// *errs.UnsupportedDataTypeError; tags are never coerced.
package typemap

import (
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/wire"
)

// ToWire maps an internal data type to its wire ordinal.
func ToWire(dt format.DataType) (wire.DataType, error) {
	switch dt {
	case format.Boolean:
		return wire.BOOLEAN, nil
	case format.Int32:
		return wire.INT32, nil
	case format.Int64:
		return wire.INT64, nil
	case format.Float:
		return wire.FLOAT, nil
	case format.Double:
		return wire.DOUBLE, nil
	case format.Text:
		return wire.TEXT, nil
	default:
		return 0, &errs.UnsupportedDataTypeError{Side: errs.SideInternal, Tag: uint8(dt)}
	}
}

// ToInternal maps a wire ordinal to the internal data type.
func ToInternal(wt wire.DataType) (format.DataType, error) {
	switch wt {
	case wire.BOOLEAN:
		return format.Boolean, nil
	case wire.INT32:
		return format.Int32, nil
	case wire.INT64:
		return format.Int64, nil
	case wire.FLOAT:
		return format.Float, nil
	case wire.DOUBLE:
		return format.Double, nil
	case wire.TEXT:
		return format.Text, nil
	default:
		return 0, &errs.UnsupportedDataTypeError{Side: errs.SideWire, Tag: uint8(wt)}
	}
}
