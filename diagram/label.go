package diagram

/*
EdgeLabel names the key range reachable through child i of a node holding keys.

	i == 0          "< keys[0]"
	i == len(keys)  "> keys[len-1]"
	otherwise       "keys[i-1] - keys[i]" (LTR) or "keys[i] - keys[i-1]" (RTL)

It returns "" when i is out of range or keys is empty.
*/
func EdgeLabel(keys []string, i int, dir Direction) string {
	if len(keys) == 0 || i < 0 || i > len(keys) {
		return ""
	}
	switch i {
	case 0:
		return "< " + keys[0]
	case len(keys):
		return "> " + keys[len(keys)-1]
	}

	low, high := keys[i-1], keys[i]
	if dir.resolve(low, high) == RTL {
		return high + " - " + low
	}
	return low + " - " + high
}
