package schemagen

import (
	"fmt"
	"strings"

	"csvforge/internal/core/tabular"
)

var djangoFields = map[tabular.Tag]string{
	tabular.TagString:  "serializers.CharField",
	tabular.TagInteger: "serializers.IntegerField",
	tabular.TagFloat:   "serializers.FloatField",
	tabular.TagEmail:   "serializers.EmailField",
	tabular.TagDate:    "serializers.DateField",
	tabular.TagURL:     "serializers.URLField",
	tabular.TagBoolean: "serializers.BooleanField",
}

func generateDjango(class string, level Level, fields []Field) string {
	var b strings.Builder
	b.WriteString("from rest_framework import serializers\n\n")
	fmt.Fprintf(&b, "class %sSerializer(serializers.Serializer):\n", class)

	for _, f := range fields {
		ft, ok := djangoFields[f.Tag]
		if !ok {
			ft = djangoFields[tabular.TagString]
		}
		switch level {
		case LevelStrict:
			if f.Tag == tabular.TagString {
				fmt.Fprintf(&b, "    %s = %s(max_length=255, required=True, allow_blank=False)\n", f.Name, ft)
			} else {
				fmt.Fprintf(&b, "    %s = %s(required=True)\n", f.Name, ft)
			}
		case LevelBasic:
			if f.Tag == tabular.TagString {
				fmt.Fprintf(&b, "    %s = %s(max_length=255)\n", f.Name, ft)
			} else {
				fmt.Fprintf(&b, "    %s = %s()\n", f.Name, ft)
			}
		default:
			fmt.Fprintf(&b, "    %s = %s(required=False, allow_null=True)\n", f.Name, ft)
		}
	}

	if level != LevelNone {
		b.WriteString("\n    def validate(self, data):\n")
		b.WriteString("        # Add custom validation logic here\n")
		b.WriteString("        return data\n")

		b.WriteString("\n    def create(self, validated_data):\n")
		b.WriteString("        # Implement create logic\n")
		b.WriteString("        return validated_data\n")

		b.WriteString("\n    def update(self, instance, validated_data):\n")
		b.WriteString("        # Implement update logic\n")
		b.WriteString("        for attr, value in validated_data.items():\n")
		b.WriteString("            setattr(instance, attr, value)\n")
		b.WriteString("        return instance\n")
	}

	return b.String()
}
