// Command csvforge-convert turns a CSV file into JSON plus generated
// serializer code (Django REST Framework, Marshmallow, Pydantic and
// dataclass variants) in one shot
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csvforge/internal/core/schemagen"
	"csvforge/internal/core/tabular"
	"csvforge/internal/services/convert/domain"
	"csvforge/internal/services/convert/repo"
	convertsvc "csvforge/internal/services/convert/service"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		csvPath      = flag.String("csv", "", "path to CSV file; empty writes and uses the built-in sample")
		out          = flag.String("out", "output", "output directory")
		class        = flag.String("class", "Data", "class name for generated serializers")
		validation   = flag.String("validation", "basic", "validation level: none, basic or strict")
		delimiter    = flag.String("delimiter", ",", "field delimiter, or 'auto' to sniff")
		indent       = flag.Int("indent", 0, "JSON indent width, 0 for compact")
		createSample = flag.Bool("create-sample", false, "write sample_data.csv and exit")
		verbose      = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *createSample {
		must(tabular.WriteSampleCSV("sample_data.csv"))
		fmt.Println("Sample CSV created: sample_data.csv")
		return
	}

	must(os.MkdirAll(*out, 0o755))

	path := *csvPath
	if path == "" {
		fmt.Println("No CSV file provided. Using sample data...")
		must(tabular.WriteSampleCSV("sample_data.csv"))
		path = "sample_data.csv"
	}

	// no run ledger in the one-shot tool
	svc := convertsvc.New(nil, repo.NewPG(), convertsvc.Config{})

	res, err := svc.Convert(context.Background(), domain.ConvertInput{
		Path:       path,
		Delimiter:  *delimiter,
		ClassName:  *class,
		Validation: *validation,
		Indent:     *indent,
	})
	must(err)

	fmt.Print(res.Summary)

	lower := strings.ToLower(res.ClassName)

	jsonFile := filepath.Join(*out, lower+".json")
	must(os.WriteFile(jsonFile, []byte(res.JSON), 0o644))
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", jsonFile, len(res.JSON))
	}

	for _, sf := range sourceFiles(lower, res.Sources) {
		dst := filepath.Join(*out, sf.name)
		must(os.WriteFile(dst, []byte(sf.code), 0o644))
		if *verbose {
			_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", dst, len(sf.code))
		}
	}

	fmt.Printf("\nAll files saved to: %s\n", *out)
}

type sourceFile struct {
	name string
	code string
}

// sourceFiles lists the serializer files to write, in the registry's
// stable kind order so repeated runs emit identical logs
func sourceFiles(lower string, sources map[string]string) []sourceFile {
	out := make([]sourceFile, 0, len(sources))
	for _, kind := range schemagen.Kinds() {
		code, ok := sources[string(kind)]
		if !ok {
			continue
		}
		out = append(out, sourceFile{
			name: fmt.Sprintf("%s_%s_serializer.py", lower, kind),
			code: code,
		})
	}
	return out
}
