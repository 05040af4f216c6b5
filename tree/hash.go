package tree

import (
	"encoding/binary"

	"github.com/signadot/fieldpath/token"

	"github.com/spaolacci/murmur3"
)

// rootSeed is the rolling hash of every tree root.
const rootSeed uint32 = 13

// keyHash mixes key into the parent's rolling hash seed.
func keyHash(key token.Token, seed uint32) uint32 {
	switch key.Type {
	case token.StrType:
		return murmur3.Sum32WithSeed([]byte(key.Str), seed)
	case token.NumType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], key.Num)
		return murmur3.Sum32WithSeed(b[:], seed)
	}
	panic("tree: hash of " + key.Type.String() + " key")
}
