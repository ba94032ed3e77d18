package annotated

// GreetingFormat welcomes a user.
//
//fmtgen:format capacity=48 args=string,int|int64 hook=describe
const GreetingFormat = "Hello %s, you are %3d"

const (
	//fmtgen:format
	firstFormat, secondFormat = "%s!", "%d?"

	// Not annotated.
	ignored = "%s"

	//fmtgen:format name=Table args=,float64
	tableLayout = "%-8s %6.2f"
)

func describe(v any) string { return "" }
