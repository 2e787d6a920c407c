package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/records"
)

var (
	decodeType     string
	decodeList     bool
	decodeWire     bool
	decodeSanitize sanitizeFlags
)

var decodeCmd = &cobra.Command{
	Use:   "decode --type T FILE...",
	Short: "Decode JSON or YAML wire documents into records",
	Long: `Decodes every FILE as a record of the given type and prints it encoded
again. Files ending in .yaml or .yml are read as YAML. Files are decoded
concurrently; output keeps the argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	fs := decodeCmd.Flags()
	fs.StringVar(&decodeType, "type", "", "record type (see barsctl types)")
	fs.BoolVar(&decodeList, "list", false, "the top level of each file is a list of records")
	fs.BoolVar(&decodeWire, "wire", false, "print wire (camelCase) names instead of debug names")
	decodeSanitize.register(fs)
	_ = decodeCmd.MarkFlagRequired("type")
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := records.Lookup(decodeType)
	if err != nil {
		return err
	}
	results := make([]barskema.Value, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		g.Go(func() error {
			v, err := decodeFile(ctx, s, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, v := range results {
		if err := write(cmd.OutOrStdout(), v.Encode(encodeMode(decodeWire))); err != nil {
			return err
		}
	}
	return nil
}

func decodeFile(ctx context.Context, s barskema.RecordSchema, path string) (barskema.Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return barskema.Value{}, err
	}
	rep := reporter()
	raw, err := barskema.ReadValue(ctx, sourceFor(path, b), cfg.ReadOpt(rep))
	if err != nil {
		return barskema.Value{}, err
	}
	logger.Debug("decoding", zap.String("file", path), zap.String("type", s.Name()))

	opt := cfg.DecodeOpt(rep)
	var v barskema.Value
	if decodeList {
		items, ok := raw.([]any)
		if !ok {
			return barskema.Value{}, barskema.Issues{barskema.TypeMismatch(s.Name(), "", barskema.Root(), "list of "+s.Name(), raw)}
		}
		vals := make([]barskema.Value, len(items))
		for i, it := range items {
			doc, _ := it.(map[string]any)
			if vals[i], err = s.DecodeValue(ctx, doc, opt); err != nil {
				return barskema.Value{}, fmt.Errorf("item %d: %w", i, err)
			}
		}
		v = barskema.ListValue(vals...)
	} else {
		doc, _ := raw.(map[string]any)
		if v, err = s.DecodeValue(ctx, doc, opt); err != nil {
			return barskema.Value{}, err
		}
	}
	return decodeSanitize.apply(v)
}

func sourceFor(path string, b []byte) barskema.Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return barskema.YAMLBytes(b)
	}
	return barskema.JSONBytes(b)
}
