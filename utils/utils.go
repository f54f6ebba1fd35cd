package utils

func Map[A any, B any](input []A, mapper func(A) B) []B {
	result := make([]B, len(input))
	for i, v := range input {
		result[i] = mapper(v)
	}
	return result
}
