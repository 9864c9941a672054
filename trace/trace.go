package trace

import (
	"github.com/rs/zerolog"

	"github.com/pink-mist/lazyutil/sequence"
)

// Pulls wraps s so every pull through the returned sequence is logged on log
// at debug level under the given name, along with the exhaustion transition
// and a final pull count. The wrapper consumes s; keep pulling through the
// returned sequence only.
func Pulls[T any](s *sequence.Sequence[T], log zerolog.Logger, name string) *sequence.Sequence[T] {
	pulls := 0
	return sequence.New(func() (T, bool) {
		v, ok := s.Pull()
		if !ok {
			log.Debug().
				Str("sequence", name).
				Int("pulls", pulls).
				Msg("sequence exhausted")
			return v, false
		}
		pulls++
		log.Debug().
			Str("sequence", name).
			Int("pull", pulls).
			Interface("value", v).
			Msg("pulled value")
		return v, true
	})
}
