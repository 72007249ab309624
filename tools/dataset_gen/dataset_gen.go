package main

// dataset_gen.go is a tiny helper utility to generate deterministic string
// datasets for standalone benchmarking of estring (outside `go test`). It
// emits newline-separated strings, drawn either from a uniform alphabet or a
// Zipf-distributed small vocabulary, so contributors can regenerate the
// exact dataset used in a performance regression hunt.
//
// Usage:
//   go run ./tools/dataset_gen -n 1000000 -dist=zipf -seed=42 -out strings.txt
//
// Flags:
//   -n       number of strings to generate (default 1e6)
//   -dist    distribution: "uniform" or "zipf" (default uniform)
//   -vocab   vocabulary size for -dist=zipf (default 10000)
//   -minlen  minimum string length (uniform strings and zipf vocabulary) (default 4)
//   -maxlen  maximum string length (uniform strings and zipf vocabulary) (default 24)
//   -zipfs   Zipf s parameter (>1) (default 1.2)
//   -zipfv   Zipf v parameter (>=1) (default 1.0)
//   -seed    RNG seed (default current time)
//   -out     output file (default stdout)
//
// © 2025 estring authors. MIT License.

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

func randomString(rnd *rand.Rand, minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += rnd.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

func main() {
	var (
		n       = flag.Int("n", 1_000_000, "number of strings to generate")
		dist    = flag.String("dist", "uniform", "distribution: uniform or zipf")
		vocab   = flag.Int("vocab", 10_000, "vocabulary size for -dist=zipf")
		minLen  = flag.Int("minlen", 4, "minimum string length (uniform strings and zipf vocabulary)")
		maxLen  = flag.Int("maxlen", 24, "maximum string length (uniform strings and zipf vocabulary)")
		zipfS   = flag.Float64("zipfs", 1.2, "zipf s parameter (>1)")
		zipfV   = flag.Float64("zipfv", 1.0, "zipf v parameter (>=1)")
		seedVal = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
		outPath = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seedVal))

	var gen func() string
	switch *dist {
	case "uniform":
		gen = func() string { return randomString(rnd, *minLen, *maxLen) }
	case "zipf":
		if *zipfS <= 1.0 || *zipfV < 1.0 {
			fmt.Fprintln(os.Stderr, "zipfs must be >1 and zipfv >=1")
			os.Exit(1)
		}
		words := make([]string, *vocab)
		for i := range words {
			words[i] = randomString(rnd, *minLen, *maxLen)
		}
		z := rand.NewZipf(rnd, *zipfS, *zipfV, uint64(*vocab-1))
		gen = func() string { return words[z.Uint64()] }
	default:
		fmt.Fprintln(os.Stderr, "unknown dist:", *dist)
		os.Exit(1)
	}

	var out *os.File
	var err error
	if *outPath == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot create file:", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	w := bufio.NewWriterSize(out, 1<<20)
	defer w.Flush()

	for i := 0; i < *n; i++ {
		fmt.Fprintln(w, gen())
	}
}
