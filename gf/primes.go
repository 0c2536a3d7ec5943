package gf

import "fmt"

// factorPrimePower decomposes q = p^m and returns (p, m).
// Returns (0, 0) if q is not a prime power.
func factorPrimePower(q uint64) (p uint64, m int) {
	if q < 2 {
		return 0, 0
	}
	p = smallestPrimeFactor(q)
	for q > 1 {
		if q%p != 0 {
			return 0, 0
		}
		q /= p
		m++
	}
	return p, m
}

func smallestPrimeFactor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return n
}

// uniqueFactors returns the distinct prime factors of n by trial division.
func uniqueFactors(n uint64) (factors []uint64) {
	for n > 1 {
		p := smallestPrimeFactor(n)
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	return
}

// primitiveRoot returns the smallest generator of the multiplicative group
// of GF(p) for a prime p.  A candidate g is a primitive root iff
// g^((p-1)/f) != 1 mod p for every prime factor f of p-1.
func primitiveRoot(p uint64) (uint64, error) {
	if p == 2 {
		return 1, nil
	}

	factors := uniqueFactors(p - 1)

	for g := uint64(2); g < p; g++ {
		primitive := true
		for _, factor := range factors {
			if modExp(g, (p-1)/factor, p) == 1 {
				primitive = false
				break
			}
		}
		if primitive {
			return g, nil
		}
	}

	return 0, fmt.Errorf("no primitive root modulo %d: modulus is not prime", p)
}

// modExp returns base^exp mod modulus.
func modExp(base, exp, modulus uint64) uint64 {
	result := uint64(1)
	base %= modulus
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = (result * base) % modulus
		}
		base = (base * base) % modulus
	}
	return result
}
