package skills

// aliasTable maps common shorthand tokens to canonical skill names.
// Lookup keys are lowercase. Read-only, process-wide.
var aliasTable = map[string]string{
	"py":                  "Python",
	"python3":             "Python",
	"js":                  "JavaScript",
	"es6":                 "JavaScript",
	"ts":                  "TypeScript",
	"golang":              "Go",
	"cpp":                 "C++",
	"csharp":              "C#",
	"c sharp":             "C#",
	"node":                "Node.js",
	"nodejs":              "Node.js",
	"reactjs":             "React",
	"react.js":            "React",
	"vue":                 "Vue.js",
	"vuejs":               "Vue.js",
	"k8s":                 "Kubernetes",
	"amazon web services": "AWS",
	"gcp":                 "Google Cloud",
	"postgres":            "PostgreSQL",
	"mongo":               "MongoDB",
	"ml":                  "Machine Learning",
	"dl":                  "Deep Learning",
	"tf":                  "TensorFlow",
	"elastic":             "Elasticsearch",
	"ci/cd pipelines":     "CI/CD",
}

// ResolveAlias looks up a lowercased token in the alias table and returns
// its canonical skill name.
func ResolveAlias(token string) (string, bool) {
	c, ok := aliasTable[token]
	return c, ok
}
