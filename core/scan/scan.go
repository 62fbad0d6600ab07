// core/scan/scan.go
package scan

import "bytes"

// Range reports every offset o in [lo, hi) at which pattern occurs in
// seq, ascending. Only start positions are partitioned: the comparison
// may read up to len(pattern)-1 bytes past hi, bounded by valid, so a
// match straddling the hi boundary is found by the partition that owns
// its start and by no other. Returns nil when nothing matches.
//
// Range is a pure function over its inputs. It uses bytes.Index jump
// scanning rather than a per-position compare loop.
func Range(seq []byte, valid, lo, hi int, pattern []byte) []int {
	pl := len(pattern)
	if pl == 0 || lo < 0 {
		return nil
	}
	if hi > valid {
		hi = valid
	}
	// Drop candidate starts whose match could not fit in the valid
	// region at all.
	if last := valid - pl; hi-1 > last {
		hi = last + 1
	}
	if lo >= hi {
		return nil
	}

	// Window covering every candidate start plus the permitted
	// lookahead; hi-1+pl <= valid holds after the clamp above.
	win := seq[lo : hi-1+pl]
	limit := hi - lo

	out := make([]int, 0, 8)
	for i := 0; i < limit; {
		j := bytes.Index(win[i:], pattern)
		if j < 0 {
			break
		}
		i += j
		if i >= limit {
			break
		}
		out = append(out, lo+i)
		i++
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
