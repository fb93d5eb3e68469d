package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/filterlabs/bloom/filter"
	"github.com/filterlabs/bloom/filter/bloom"
)

const charset = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + "0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func RandomString(length int, charset string) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return b
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	pair, err := filter.NewHashPair(filter.NewMetroHasher(1337), filter.NewXXH3Hasher(7331))
	if err != nil {
		log.Fatal().Err(err).Msg("pairing hash functions")
	}

	n := 1_000_000
	fpRate := 0.01
	bf, err := bloom.NewBloomFilter(n, fpRate, pair)
	if err != nil {
		log.Fatal().Err(err).Msg("building filter")
	}
	log.Info().
		Uint64("bit_size", bf.BitSize()).
		Uint64("hash_fns", bf.HashFnCount()).
		Float64("fp_rate", bf.FalsePositiveRate()).
		Msg("filter sized")

	inserted := make(map[string]bool, n)
	batch := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		s := RandomString(1+seededRand.Intn(64), charset)
		batch = append(batch, s)
		inserted[string(s)] = true
	}

	start := time.Now()
	bf.InsertMany(batch)
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("items", len(batch)).
		Msg("bulk insert done")

	fn, fp := 0, 0
	for s := range inserted {
		if !bf.MightContain([]byte(s)) {
			fn++
		}
	}
	probes := 100_000
	for i := 0; i < probes; i++ {
		s := []byte(fmt.Sprintf("probe-%d-%d", i, seededRand.Intn(1<<30)))
		if !inserted[string(s)] && bf.MightContain(s) {
			fp++
		}
	}

	log.Info().
		Int("false_negatives", fn).
		Float64("false_positive_rate", float64(fp)/float64(probes)).
		Float64("fill_ratio", bf.FillRatio()).
		Uint64("estimated_cardinality", bf.EstimateCardinality()).
		Int("true_cardinality", len(inserted)).
		Msg("workload stats")
}
