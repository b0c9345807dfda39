package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/packbits"
	"github.com/rawbytedev/packbits/internal/config"
	"github.com/rawbytedev/packbits/pkg/checksum"
	"github.com/rawbytedev/packbits/pkg/compress"
	"github.com/rawbytedev/packbits/pkg/container"
)

// codecFor applies a configured level on top of the registry codec.
func codecFor(name string, level int) (compress.Codec, error) {
	c, err := compress.Lookup(name)
	if err != nil || level == 0 {
		return c, err
	}
	switch c.(type) {
	case *compress.Flate:
		return &compress.Flate{Level: level}, nil
	case *compress.Zstd:
		return &compress.Zstd{Level: zstd.EncoderLevel(level)}, nil
	case *compress.Brotli:
		return &compress.Brotli{Quality: level}, nil
	}
	return c, nil
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	out := fs.String("o", "", "output file (default: input + .pb)")
	codecName := fs.String("c", "", "compression codec: "+strings.Join(compress.Names(), ", "))
	sumName := fs.String("sum", "", "checksum algorithm ("+strings.Join(checksum.Names(), ", ")+") or none")
	cfgPath := fs.String("config", "", "YAML config file")
	mask := fs.Bool("mask", false, "mask input bytes to 7 bits instead of failing")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("pack: exactly one input file expected")
	}
	in := fs.Arg(0)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *codecName == "" {
		*codecName = cfg.Codec
	}
	if *sumName == "" {
		*sumName = cfg.Checksum
	}
	maskInput := *mask || cfg.MaskInput

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return fmt.Errorf("pack: %s: need at least two bytes to pack", in)
	}
	if maskInput {
		for i := 1; i < len(data); i++ {
			data[i] &= 0x7f
		}
	} else {
		// the seed byte travels verbatim; everything after it must fit 7 bits
		for i := 1; i < len(data); i++ {
			if data[i] > 0x7f {
				return fmt.Errorf("pack: %s: byte 0x%02x at offset %d is not 7-bit clean (use -mask)", in, data[i], i)
			}
		}
	}

	psize, err := packbits.PackedSize(data)
	if err != nil {
		return err
	}
	packed := make([]byte, psize)
	pn, err := packbits.Pack(packed, data)
	if err != nil {
		return err
	}
	packed = packed[:pn]

	frame := &container.Frame{RawSize: uint64(pn)}
	if *sumName != "none" {
		// the checksum guards the packed stream end to end, independent of
		// the frame CRC
		fn, err := checksum.ByName(*sumName)
		if err != nil {
			return err
		}
		id, err := checksum.IDByName(*sumName)
		if err != nil {
			return err
		}
		frame.Flags |= container.FlagHasChecksum
		frame.SumAlgo = id
		frame.Sum = fn(packed)
	}

	codec, err := codecFor(*codecName, cfg.Level)
	if err != nil {
		return err
	}
	frame.CodecID = codec.ID()
	payload := packed
	if _, raw := codec.(*compress.Uncompressed); !raw {
		if payload, err = codec.Encode(nil, packed); err != nil {
			return err
		}
		frame.Flags |= container.FlagCompressed
	}
	frame.Payload = payload

	blob, err := container.Encode(frame)
	if err != nil {
		return err
	}
	outPath := *out
	if outPath == "" {
		outPath = in + ".pb"
	}
	if err := os.WriteFile(outPath, blob, 0o644); err != nil {
		return err
	}
	log.Printf("packed %s: %d -> %d bytes (%s)", in, len(data), len(blob), codec)
	return nil
}

func runUnpack(args []string) error {
	fs := flag.NewFlagSet("unpack", flag.ExitOnError)
	out := fs.String("o", "", "output file (default: input without .pb, or input + .out)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("unpack: exactly one input file expected")
	}
	in := fs.Arg(0)

	blob, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	frame, err := container.Decode(blob)
	if err != nil {
		return err
	}

	packed := frame.Payload
	if frame.Flags&container.FlagCompressed != 0 {
		codec, err := compress.ByID(frame.CodecID)
		if err != nil {
			return err
		}
		if packed, err = codec.Decode(make([]byte, 0, frame.RawSize), frame.Payload); err != nil {
			return err
		}
	}
	if uint64(len(packed)) != frame.RawSize {
		return fmt.Errorf("unpack: %s: payload is %d bytes, frame declares %d", in, len(packed), frame.RawSize)
	}

	if frame.Flags&container.FlagHasChecksum != 0 {
		fn, err := checksum.ByID(frame.SumAlgo)
		if err != nil {
			return err
		}
		if got := fn(packed); got != frame.Sum {
			return fmt.Errorf("unpack: %s: checksum mismatch: got %#x, frame records %#x", in, got, frame.Sum)
		}
	}

	size, err := packbits.UnpackedSize(packed)
	if err != nil {
		return err
	}
	// one spare unit in case the stream carries a nonzero trailing residual
	dst := make([]byte, size+1)
	n, err := packbits.Unpack(dst, packed)
	if err != nil {
		return err
	}

	outPath := *out
	if outPath == "" {
		if strings.HasSuffix(in, ".pb") {
			outPath = strings.TrimSuffix(in, ".pb")
		} else {
			outPath = in + ".out"
		}
	}
	if err := os.WriteFile(outPath, dst[:n], 0o644); err != nil {
		return err
	}
	log.Printf("unpacked %s: %d -> %d bytes", in, len(blob), n)
	return nil
}
