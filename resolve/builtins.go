package resolve

// formatSinks are the built-in print-style functions callable with the
// plain call syntax. They accept any arguments and yield ().
var formatSinks = map[string]bool{
	"print":   true,
	"println": true,
}

func isFormatSink(name string) bool {
	return formatSinks[name]
}
