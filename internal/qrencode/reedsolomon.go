package qrencode

// GF(256) arithmetic and Reed-Solomon parity generation, grounded on
// nayuki-QR-Code-generator's golang/qrcodegen.go
// (reedSolomonComputeDivisor / reedSolomonComputeRemainder /
// reedSolomonMultiply), using the QR-standard primitive polynomial
// x^8+x^4+x^3+x^2+1 (0x11D).

func rsMultiply(x, y byte) byte {
	var z int
	for i := 7; i >= 0; i-- {
		z = (z << 1) ^ ((z >> 7) * 0x11D)
		z ^= int((y>>uint(i))&1) * int(x)
	}
	return byte(z)
}

// rsGeneratorPoly returns the degree-length generator polynomial
// coefficients, leading term implicit (this is nayuki's compact
// representation: result[j] is the coefficient of x^(degree-1-j), with
// the x^degree term's coefficient always 1).
func rsGeneratorPoly(degree int) []byte {
	result := make([]byte, degree)
	result[degree-1] = 1
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = rsMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = rsMultiply(root, 0x02)
	}
	return result
}

// rsRemainder computes the nCheckWords parity bytes for one block's data
// bytes under divisor.
func rsRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for j := range divisor {
			result[j] ^= rsMultiply(divisor[j], factor)
		}
	}
	return result
}
