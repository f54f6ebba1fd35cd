package scoring

import "vaulting/repository"

func hasArtisticFields(f *fields, _ *repository.Category) bool {
	return f.has("coh", "c1", "c2", "c3", "c4")
}

func artisticScore(f *fields, category *repository.Category) float64 {
	c := category.Artistic
	total := nullLimit(f.number("coh"))*c.CH +
		nullLimit(f.number("c1"))*c.C1 +
		nullLimit(f.number("c2"))*c.C2 +
		nullLimit(f.number("c3"))*c.C3 +
		nullLimit(f.number("c4"))*c.C4
	return nullLimit(total - nullLimit(f.number("ded")))
}

func hasTechArtisticFields(f *fields, _ *repository.Category) bool {
	return f.has("tcoh", "t1", "t2", "t3")
}

func techArtisticScore(f *fields, category *repository.Category) float64 {
	c := category.TechArtistic
	total := nullLimit(f.number("tcoh"))*c.CH +
		nullLimit(f.number("t1"))*c.T1 +
		nullLimit(f.number("t2"))*c.T2 +
		nullLimit(f.number("t3"))*c.T3
	return nullLimit(total - nullLimit(f.number("tded")))
}
