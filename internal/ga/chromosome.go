package ga

// Chromosome is an ordered sequence of genes, the flat encoding of one
// individual's parameters. Crossover and mutation operate on it
// gene by gene.
type Chromosome []float32

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c)
}

// Clone makes an independent copy of the chromosome.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}
