package y2015

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/adventkit/adventkit/advent"
)

// Day04 is "The Ideal Stocking Stuffer", which mines AdventCoins by brute forcing MD5 hashes.
type Day04 struct{}

func (Day04) Info() advent.Info {
	return advent.Info{ID: advent.MustProblemID(2015, 4), Title: "The Ideal Stocking Stuffer", Cost: advent.Expensive}
}

func (Day04) PartOne(input string) (interface{}, error) {
	return mine(input, "00000")
}

func (Day04) PartTwo(input string) (interface{}, error) {
	return mine(input, "000000")
}

// mine finds the lowest positive number that, appended to the secret key, hashes to a hex digest
// starting with prefix.
func mine(key, prefix string) (int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, advent.InvalidInput("the secret key is empty")
	}
	buf := make([]byte, 0, len(key)+20)
	digest := make([]byte, hex.EncodedLen(md5.Size))
	for n := 1; ; n++ {
		buf = strconv.AppendInt(append(buf[:0], key...), int64(n), 10)
		sum := md5.Sum(buf)
		hex.Encode(digest, sum[:])
		if strings.HasPrefix(string(digest), prefix) {
			return n, nil
		}
	}
}
