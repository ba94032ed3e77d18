package multiname

const (
	//fmtgen:format name=Pair
	left, right = "%s", "%d"
)
