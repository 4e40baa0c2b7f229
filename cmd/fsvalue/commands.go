package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	firestorecodec "github.com/wippyai/firestore-codec"
	"github.com/wippyai/firestore-codec/timestamp"
)

type output struct {
	w      io.Writer
	styles styles
}

func (o output) tree(v *firestorepb.Value) error {
	_, err := io.WriteString(o.w, renderTree(v, o.styles))
	return err
}

func (o output) write(format string, msg proto.Message) error {
	switch format {
	case "json":
		b, err := protojson.MarshalOptions{Multiline: true}.Marshal(msg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.w, string(b))
		return err
	case "proto":
		b, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
		if err != nil {
			return err
		}
		_, err = o.w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func runEncode(args []string, stdin io.Reader, out output, logger *zap.Logger) error {
	var (
		inputFormat  string
		outputFormat string
		document     bool
	)
	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flagSet.StringVar(&inputFormat, "input", "json", "input format: json, yaml or cbor")
	flagSet.StringVarP(&outputFormat, "output", "o", "tree", "output format: tree, json or proto")
	flagSet.BoolVar(&document, "document", false, "wrap the result in a Document (input must be a map)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("encode takes at most one file")
	}

	data, err := readSource(flagSet.Arg(0), stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	v, err := parseInput(inputFormat, data)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", zap.String("format", inputFormat), zap.Int("bytes", len(data)))

	if document {
		doc, err := firestorecodec.ToDocument(v)
		if err != nil {
			return err
		}
		if outputFormat == "tree" {
			return out.tree(&firestorepb.Value{ValueType: &firestorepb.Value_MapValue{
				MapValue: &firestorepb.MapValue{Fields: doc.GetFields()},
			}})
		}
		return out.write(outputFormat, doc)
	}

	val, err := firestorecodec.Encode(v)
	if err != nil {
		return err
	}
	if outputFormat == "tree" {
		return out.tree(val)
	}
	return out.write(outputFormat, val)
}

func runInspect(args []string, stdin io.Reader, out output) error {
	var inputFormat string
	flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	flagSet.StringVar(&inputFormat, "input", "json", "input format: json (protojson) or proto")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	data, err := readSource(flagSet.Arg(0), stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	val := &firestorepb.Value{}
	switch inputFormat {
	case "json":
		err = protojson.Unmarshal(data, val)
	case "proto":
		err = proto.Unmarshal(data, val)
	default:
		return fmt.Errorf("unknown input format %q", inputFormat)
	}
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}
	return out.tree(val)
}

func runTimestamp(args []string, out output) error {
	if len(args) != 1 {
		return fmt.Errorf("timestamp takes exactly one RFC3339 argument")
	}
	t, err := time.Parse(time.RFC3339Nano, args[0])
	if err != nil {
		return err
	}

	ts := timestamp.New(t)
	layout, err := ts.Bytes()
	if err != nil {
		return err
	}
	val, err := firestorecodec.Encode(ts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out.w, "%s %s\n", out.styles.key.Render("seconds:"), out.styles.value.Render(fmt.Sprint(ts.Seconds)))
	fmt.Fprintf(out.w, "%s %s\n", out.styles.key.Render("nanos:  "), out.styles.value.Render(fmt.Sprint(ts.Nanos)))
	fmt.Fprintf(out.w, "%s %s\n", out.styles.key.Render("layout: "), out.styles.value.Render(hex.EncodeToString(layout)))
	return out.tree(val)
}
