// Command dataitem-demo declares a sample record type, optionally edits a
// record in the terminal, and prints the saved stream plus the generated
// reference sheet.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	dataitem "github.com/goliatone/go-dataitem"
	"github.com/goliatone/go-dataitem/pkg/editors/tui"
	"github.com/goliatone/go-dataitem/pkg/export/openapi"
	"github.com/goliatone/go-dataitem/pkg/render/docs"
	"github.com/goliatone/go-dataitem/pkg/serialize/jsonio"
	"github.com/goliatone/go-dataitem/pkg/serialize/yamlio"

	gojson "github.com/goccy/go-json"
)

func main() {
	edit := flag.Bool("edit", false, "edit the record interactively before saving")
	format := flag.String("format", "json", "save format: json or yaml")
	sheet := flag.Bool("sheet", false, "print the field reference sheet instead of saving")
	schema := flag.Bool("openapi", false, "print the exported OpenAPI schema instead of saving")
	flag.Parse()

	ds := sampleSchema()

	if *sheet {
		out, err := docs.New().Render(ds)
		if err != nil {
			log.Fatalf("render sheet: %v", err)
		}
		fmt.Print(out)
		return
	}

	if *schema {
		spec, err := openapi.SchemaFor(ds)
		if err != nil {
			log.Fatalf("export schema: %v", err)
		}
		enc := gojson.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(spec); err != nil {
			log.Fatalf("encode schema: %v", err)
		}
		return
	}

	rec, err := ds.NewRecord()
	if err != nil {
		log.Fatalf("create record: %v", err)
	}

	if *edit {
		if err := tui.New().Edit(context.Background(), rec); err != nil {
			log.Fatalf("edit record: %v", err)
		}
	}

	if failed := rec.Check(); len(failed) > 0 {
		log.Fatalf("invalid fields: %v", failed)
	}

	var buf bytes.Buffer
	switch *format {
	case "json":
		w := jsonio.NewWriter(&buf)
		if err := rec.Save(w); err != nil {
			log.Fatalf("save record: %v", err)
		}
		if err := w.Close(); err != nil {
			log.Fatalf("save record: %v", err)
		}
	case "yaml":
		w := yamlio.NewWriter(&buf)
		if err := rec.Save(w); err != nil {
			log.Fatalf("save record: %v", err)
		}
		if err := w.Close(); err != nil {
			log.Fatalf("save record: %v", err)
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}
	fmt.Print(buf.String())
}

func sampleSchema() *dataitem.Schema {
	return dataitem.MustSchema("processing parameters",
		dataitem.NewString("Title").NotEmpty().WithDefault("untitled"),
		dataitem.NewInt("Iterations").WithDefault(10).WithMin(1).WithMax(1000),
		dataitem.NewFloat("Threshold").WithDefault(0.5).WithMin(0).WithMax(1),
		dataitem.NewBool("Verbose").WithText("print progress while running"),
		dataitem.NewChoice("Method", dataitem.StaticOf(dataitem.Labels("bilinear", "bicubic", "nearest"))),
		dataitem.NewMultipleChoice("Channels", dataitem.StaticOf(dataitem.Labels("red", "green", "blue", "alpha"))).
			WithDefault(0, 1, 2),
		dataitem.NewColor("Overlay color").WithDefault("#ff0000"),
		dataitem.NewFloatArray("Weights").WithDefault(1, 1, 1),
		dataitem.NewDate("Start date").WithDefault(time.Now()),
	)
}
