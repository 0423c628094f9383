package schemagen

import (
	"fmt"
	"strings"

	"csvforge/internal/core/tabular"
)

var pydanticTypes = map[tabular.Tag]string{
	tabular.TagString:  "str",
	tabular.TagInteger: "int",
	tabular.TagFloat:   "float",
	tabular.TagEmail:   "EmailStr",
	tabular.TagDate:    "date",
	tabular.TagURL:     "AnyHttpUrl",
	tabular.TagBoolean: "bool",
}

func generatePydantic(class string, level Level, fields []Field) string {
	has := func(tag tabular.Tag) bool {
		for _, f := range fields {
			if f.Tag == tag {
				return true
			}
		}
		return false
	}

	// each conditional import on its own line so the output parses
	imports := []string{"from pydantic import BaseModel, validator"}
	if has(tabular.TagEmail) {
		imports = append(imports, "from pydantic import EmailStr")
	}
	if has(tabular.TagURL) {
		imports = append(imports, "from pydantic import AnyHttpUrl")
	}
	if has(tabular.TagDate) {
		imports = append(imports, "from datetime import date")
	}

	var b strings.Builder
	b.WriteString(strings.Join(imports, "\n") + "\n")
	b.WriteString("from typing import Optional\n\n")
	fmt.Fprintf(&b, "class %s(BaseModel):\n", class)

	for _, f := range fields {
		pt, ok := pydanticTypes[f.Tag]
		if !ok {
			pt = pydanticTypes[tabular.TagString]
		}
		if level == LevelStrict {
			fmt.Fprintf(&b, "    %s: %s\n", f.Name, pt)
		} else {
			fmt.Fprintf(&b, "    %s: Optional[%s] = None\n", f.Name, pt)
		}
	}

	if level != LevelNone {
		b.WriteString("\n    class Config:\n")
		b.WriteString("        # Pydantic configuration\n")
		b.WriteString("        validate_assignment = True\n")
		b.WriteString("        use_enum_values = True\n")

		if level == LevelStrict {
			for _, f := range fields {
				if f.Tag != tabular.TagString {
					continue
				}
				fmt.Fprintf(&b, "\n    @validator('%s')\n", f.Name)
				fmt.Fprintf(&b, "    def validate_%s(cls, v):\n", f.Name)
				b.WriteString("        if not v or len(v.strip()) == 0:\n")
				fmt.Fprintf(&b, "            raise ValueError('%s cannot be empty')\n", f.Name)
				b.WriteString("        return v.strip()\n")
			}
		}
	}

	return b.String()
}
