package rainbow

import (
	"sync"

	"github.com/hashassin/hashassin/internal/hashkit"
	"github.com/hashassin/hashassin/internal/herrors"
	"github.com/hashassin/hashassin/internal/reduction"
	"github.com/hashassin/hashassin/internal/workpool"
)

// BuildChains walks numLinks applications of R∘H from each seed, using
// threads worker goroutines over contiguous, disjoint chunks of seeds (no
// cross-worker sharing). Output chain order need not match seed order.
//
// A hash failure anywhere aborts the whole build and surfaces as
// herrors.ChainWalkFailed — unlike the reference implementation, which
// drops the offending chain silently and returns fewer chains than seeds.
func BuildChains(seeds [][]byte, algorithm string, numLinks, threads int) ([]Chain, error) {
	if len(seeds) == 0 {
		return nil, herrors.New(herrors.InvalidArgument, "no seed passwords provided")
	}
	if numLinks < 1 {
		return nil, herrors.New(herrors.InvalidArgument, "num_links must be >= 1")
	}
	if threads < 1 {
		threads = 1
	}

	algo := hashkit.Normalize(algorithm)
	if _, ok := hashkit.DigestLength(algo); !ok {
		return nil, herrors.New(herrors.UnsupportedAlgorithm, "unsupported algorithm %q", algo)
	}

	starts := workpool.Chunks(len(seeds), threads)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		chains   []Chain
		firstErr error
	)

	for i, start := range starts {
		end := len(seeds)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		wg.Add(1)
		go func(chunk [][]byte) {
			defer wg.Done()

			local := make([]Chain, 0, len(chunk))
			for _, seed := range chunk {
				end, err := walk(seed, algo, numLinks)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				local = append(local, Chain{Start: seed, End: end})
			}

			mu.Lock()
			chains = append(chains, local...)
			mu.Unlock()
		}(seeds[start:end])
	}

	wg.Wait()

	if firstErr != nil {
		return nil, herrors.Wrap(herrors.ChainWalkFailed, firstErr, "chain construction failed")
	}
	return chains, nil
}

func walk(seed []byte, algo string, numLinks int) ([]byte, error) {
	pwd := seed
	for i := 0; i < numLinks; i++ {
		digest, err := hashkit.Hash(algo, pwd)
		if err != nil {
			return nil, err
		}
		pwd = reduction.Reduce(digest, len(pwd), reduction.Charset)
	}
	return pwd, nil
}
