package schemagen

import (
	"fmt"
	"strings"

	"csvforge/internal/core/tabular"
)

var marshmallowFields = map[tabular.Tag]string{
	tabular.TagString:  "fields.Str",
	tabular.TagInteger: "fields.Int",
	tabular.TagFloat:   "fields.Float",
	tabular.TagEmail:   "fields.Email",
	tabular.TagDate:    "fields.Date",
	tabular.TagURL:     "fields.Url",
	tabular.TagBoolean: "fields.Bool",
}

func generateMarshmallow(class string, level Level, fields []Field) string {
	var b strings.Builder
	b.WriteString("from marshmallow import Schema, fields, validate, post_load\n\n")
	fmt.Fprintf(&b, "class %sSchema(Schema):\n", class)

	for _, f := range fields {
		ft, ok := marshmallowFields[f.Tag]
		if !ok {
			ft = marshmallowFields[tabular.TagString]
		}
		switch level {
		case LevelStrict:
			if f.Tag == tabular.TagString {
				fmt.Fprintf(&b, "    %s = %s(required=True, validate=validate.Length(min=1, max=255))\n", f.Name, ft)
			} else {
				fmt.Fprintf(&b, "    %s = %s(required=True)\n", f.Name, ft)
			}
		case LevelBasic:
			fmt.Fprintf(&b, "    %s = %s()\n", f.Name, ft)
		default:
			fmt.Fprintf(&b, "    %s = %s(allow_none=True, missing=None)\n", f.Name, ft)
		}
	}

	b.WriteString("\n    @post_load\n")
	fmt.Fprintf(&b, "    def make_%s(self, data, **kwargs):\n", strings.ToLower(class))
	fmt.Fprintf(&b, "        return %s(**data)\n", class)

	// companion data class the post_load hook constructs
	fmt.Fprintf(&b, "\n\nclass %s:\n", class)
	b.WriteString("    def __init__(self, **kwargs):\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "        self.%s = kwargs.get('%s')\n", f.Name, f.Name)
	}

	return b.String()
}
