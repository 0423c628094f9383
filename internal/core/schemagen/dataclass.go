package schemagen

import (
	"fmt"
	"strings"

	"csvforge/internal/core/tabular"
)

var dataclassTypes = map[tabular.Tag]string{
	tabular.TagString:  "str",
	tabular.TagInteger: "int",
	tabular.TagFloat:   "float",
	tabular.TagEmail:   "str",
	tabular.TagDate:    "str",
	tabular.TagURL:     "str",
	tabular.TagBoolean: "bool",
}

func generateDataclass(class string, level Level, fields []Field) string {
	hasDate := false
	for _, f := range fields {
		if f.Tag == tabular.TagDate {
			hasDate = true
			break
		}
	}

	var b strings.Builder
	b.WriteString("from dataclasses import dataclass, field\n")
	b.WriteString("from typing import Optional, List, Dict, Any\n")
	if hasDate {
		b.WriteString("from datetime import datetime\n")
	}
	b.WriteString("\n")

	b.WriteString("@dataclass\n")
	fmt.Fprintf(&b, "class %s:\n", class)

	for _, f := range fields {
		pt, ok := dataclassTypes[f.Tag]
		if !ok {
			pt = dataclassTypes[tabular.TagString]
		}
		if level == LevelStrict {
			fmt.Fprintf(&b, "    %s: %s\n", f.Name, pt)
		} else {
			fmt.Fprintf(&b, "    %s: Optional[%s] = None\n", f.Name, pt)
		}
	}

	b.WriteString("\n    @classmethod\n")
	fmt.Fprintf(&b, "    def from_dict(cls, data: Dict[str, Any]) -> '%s':\n", class)
	b.WriteString("        return cls(**data)\n")

	b.WriteString("\n    def to_dict(self) -> Dict[str, Any]:\n")
	b.WriteString("        return {\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "            '%s': self.%s,\n", f.Name, f.Name)
	}
	b.WriteString("        }\n")

	b.WriteString("\n    @classmethod\n")
	fmt.Fprintf(&b, "    def from_json_file(cls, file_path: str) -> List['%s']:\n", class)
	b.WriteString("        import json\n")
	b.WriteString("        with open(file_path, 'r') as f:\n")
	b.WriteString("            data = json.load(f)\n")
	b.WriteString("        return [cls.from_dict(item) for item in data]\n")

	return b.String()
}
