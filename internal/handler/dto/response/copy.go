package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// timestamps in list and detail payloads are unix seconds
var viewCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				t := src.(*time.Time)
				if t == nil {
					return int64(0), nil
				}
				return t.Unix(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView fills dst from a query view by field name.
func copyView(dst, src any) {
	_ = copier.CopyWithOption(dst, src, viewCopyOption)
}
