package logging

import (
	"fmt"
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Search-domain helpers

func Component(name string) Field {
	return String("component", name)
}

// SearchID identifies one of several parallel searches.
func SearchID(id int) Field {
	return Int("search", id)
}

func Seed(seed uint64) Field {
	return Uint64("seed", seed)
}

func Step(step int64) Field {
	return Int64("step", step)
}

func Score(score int64) Field {
	return Int64("score", score)
}

// Hash renders an identity hash in hex; JSON numbers lose precision past 2^53.
func Hash(h uint64) Field {
	return String("hash", fmt.Sprintf("%016x", h))
}

func Structure(kind fmt.Stringer) Field {
	return String("structure", kind.String())
}

func Sizes(sizes []int) Field {
	return Any("sizes", sizes)
}

func Vertices(n int) Field {
	return Int("vertices", n)
}

func Workers(n int) Field {
	return Int("workers", n)
}

func Path(p string) Field {
	return String("path", p)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
