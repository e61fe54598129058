// Command jubjubctl is a small manual-inspection tool over the jubjub
// package: it is not part of the library contract, just a convenient way
// to generate, serialize, and decode points from a shell.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"jubjub.dev"
	"jubjub.dev/internal/fr"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("jubjubctl: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jubjubctl generate -scalar N | decode -point HEX")
}

// runGenerate multiplies the cofactor-cleared generator by a scalar taken
// from -scalar (a decimal uint64) and prints the compressed encoding.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	scalar := fs.Uint64("scalar", 1, "scalar to multiply the generator by")
	if err := fs.Parse(args); err != nil {
		return err
	}

	base := jubjub.ExtendedFromAffine(jubjub.FullGenerator).MulByCofactor()
	p := base.MultiplyScalar(fr.FromU64(*scalar))
	encoded := p.ToAffine().ToBytes()

	fmt.Println(hex.EncodeToString(encoded[:]))
	return nil
}

// runDecode parses a hex-encoded 32-byte compressed point from -point and
// reports whether it decodes to a valid, torsion-free curve point.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	pointHex := fs.String("point", "", "hex-encoded 32-byte compressed point")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pointHex == "" {
		return errors.New("jubjubctl: -point is required")
	}

	raw, err := hex.DecodeString(*pointHex)
	if err != nil {
		return errors.Wrap(err, "jubjubctl: decoding hex")
	}
	if len(raw) != 32 {
		return errors.Errorf("jubjubctl: expected 32 bytes, got %d", len(raw))
	}
	var b [32]byte
	copy(b[:], raw)

	p, err := jubjub.AffinePointFromBytesOrErr(b)
	if err != nil {
		return errors.Wrap(err, "jubjubctl: decoding point")
	}

	e := jubjub.ExtendedFromAffine(p)
	fmt.Printf("u=%s\n", p.U())
	fmt.Printf("v=%s\n", p.V())
	fmt.Printf("torsion_free=%t\n", e.IsTorsionFree() == 1)
	fmt.Printf("small_order=%t\n", e.IsSmallOrder() == 1)
	return nil
}
