package crypto

import (
	"fmt"
	"io"
)

// SampleConstrained draws a string of exactly n characters containing one
// character from every class in a.Classes. The remaining n-len(a.Classes)
// characters are sampled without replacement from a.Pool, so filler
// characters are pairwise distinct but may repeat a guaranteed one. The
// combined result is shuffled uniformly before it is returned.
func SampleConstrained(r io.Reader, a Alphabet, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", ErrInvalidParameter, n)
	}
	if len(a.Pool) == 0 {
		return "", fmt.Errorf("%w: empty alphabet", ErrInvalidParameter)
	}
	mandatory := len(a.Classes)
	if mandatory > n {
		return "", fmt.Errorf("%w: %d required character classes do not fit in length %d",
			ErrInvalidParameter, mandatory, n)
	}
	fill := n - mandatory
	if fill > len(a.Pool) {
		return "", fmt.Errorf("%w: cannot draw %d distinct characters from an alphabet of %d",
			ErrInvalidParameter, fill, len(a.Pool))
	}

	result := make([]byte, 0, n)
	for _, class := range a.Classes {
		if class == "" {
			return "", fmt.Errorf("%w: empty character class", ErrInvalidParameter)
		}
		ch, err := randChar(r, class)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if fill > 0 {
		filler, err := sampleDistinct(r, a.Pool, fill)
		if err != nil {
			return "", err
		}
		result = append(result, filler...)
	}

	if err := shuffle(r, result); err != nil {
		return "", err
	}
	return string(result), nil
}

// sampleDistinct picks k characters of pool without replacement using a
// partial Fisher-Yates pass over a copy of pool.
func sampleDistinct(r io.Reader, pool string, k int) ([]byte, error) {
	buf := []byte(pool)
	for i := 0; i < k; i++ {
		j, err := randInt(r, len(buf)-i)
		if err != nil {
			return nil, err
		}
		j += i
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k], nil
}
