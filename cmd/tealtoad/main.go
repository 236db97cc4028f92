// Package main provides the TealToad CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/tealtoad/tealtoad/tensor"
)

const version = "v0.0.1-dev"

// errUsage marks command-line mistakes, which exit with status 2.
var errUsage = errors.New("usage error")

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()
	defer klog.Flush()

	if err := run(flag.Args(), os.Stdout); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "TealToad - shape inference for n-dimensional arrays")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                  Show version")
	fmt.Fprintln(w, "  shape <json>             Print the shape of a number or nested array")
	fmt.Fprintln(w, "  count <json-shape>       Print the number of items a shape holds")
	fmt.Fprintln(w, "  from <json>              Build a tensor from a number or nested array")
	fmt.Fprintln(w, "  fill <json-shape> [v]    Build a tensor of the shape filled with v (default 0)")
}

// run executes one command and writes its result to stdout.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(errUsage, "no command given")
	}

	cmd, args := args[0], args[1:]
	klog.V(2).Infof("running %q with %d argument(s)", cmd, len(args))

	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "TealToad %s\n", version)
		return nil
	case "shape":
		x, err := decodeArg(args)
		if err != nil {
			return err
		}
		s, err := tensor.ShapeOf(x)
		if err != nil {
			return errors.WithMessage(err, "shape")
		}
		fmt.Fprintln(stdout, s)
		return nil
	case "count":
		x, err := decodeArg(args)
		if err != nil {
			return err
		}
		n, err := tensor.CountItems(x)
		if err != nil {
			return errors.WithMessage(err, "count")
		}
		fmt.Fprintln(stdout, n)
		return nil
	case "from":
		x, err := decodeArg(args)
		if err != nil {
			return err
		}
		t, err := tensor.FromAny[float64](x)
		if err != nil {
			return errors.WithMessage(err, "from")
		}
		fmt.Fprintln(stdout, t)
		return nil
	case "fill":
		return fill(args, stdout)
	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}
}

func fill(args []string, stdout io.Writer) error {
	if len(args) != 1 && len(args) != 2 {
		return errors.Wrapf(errUsage, "fill takes a shape and an optional value, got %d argument(s)", len(args))
	}
	shape, err := decode(args[0])
	if err != nil {
		return err
	}

	value := 0.0
	if len(args) == 2 {
		value, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return errors.Wrapf(errUsage, "fill value %q is not a number", args[1])
		}
	}

	t, err := tensor.FillAny(shape, value)
	if err != nil {
		return errors.WithMessage(err, "fill")
	}
	fmt.Fprintln(stdout, t)
	return nil
}

// decodeArg decodes the single JSON argument a command expects.
func decodeArg(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errors.Wrapf(errUsage, "expected 1 argument, got %d", len(args))
	}
	return decode(args[0])
}

// decode parses one JSON value, keeping numbers as json.Number so integers
// stay exact.
func decode(arg string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()

	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, errors.Wrapf(errUsage, "invalid JSON %q: %v", arg, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(errUsage, "invalid JSON %q: trailing data", arg)
	}
	klog.V(3).Infof("decoded %q as %T", arg, x)
	return x, nil
}
