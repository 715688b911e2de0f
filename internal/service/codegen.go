package service

import "math/rand"

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// CodeGenerator produces client access codes: six symbols drawn uniformly
// from A-Z0-9. Codes are human-presentable, not secrets, so a plain
// pseudo-random source is enough. Generated codes are not checked against
// existing clients; see DESIGN.md on collisions.
type CodeGenerator struct {
	rnd *rand.Rand
}

// NewCodeGenerator seeds the generator. Callers pass time.Now().UnixNano()
// outside tests.
func NewCodeGenerator(seed int64) *CodeGenerator {
	return &CodeGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// NewCode returns a fresh access code.
func (g *CodeGenerator) NewCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[g.rnd.Intn(len(codeAlphabet))]
	}
	return string(b)
}
