package normalize

import "errors"

// ErrEmptyVocabulary is returned when a canonicalizer is built without any aliases.
var ErrEmptyVocabulary = errors.New("skill vocabulary is empty")

// VocabEntry maps a lowercase alias to its canonical display name.
type VocabEntry struct {
	Alias     string
	Canonical string
}

// Vocabulary is an immutable alias -> canonical skill mapping. Entries keep
// their declaration order so fuzzy tie-breaks are deterministic (first entry
// wins). Built once at startup, never mutated afterwards.
type Vocabulary struct {
	entries []VocabEntry
	index   map[string]string
}

func NewVocabulary(entries []VocabEntry) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyVocabulary
	}

	index := make(map[string]string, len(entries))
	kept := make([]VocabEntry, 0, len(entries))
	for _, e := range entries {
		if e.Alias == "" || e.Canonical == "" {
			continue
		}
		if _, dup := index[e.Alias]; dup {
			continue
		}
		index[e.Alias] = e.Canonical
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return &Vocabulary{entries: kept, index: index}, nil
}

// Lookup returns the canonical name for an exact (lowercase) alias.
func (v *Vocabulary) Lookup(alias string) (string, bool) {
	c, ok := v.index[alias]
	return c, ok
}

// Entries returns the aliases in declaration order.
func (v *Vocabulary) Entries() []VocabEntry {
	return v.entries
}

func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// DefaultVocabulary returns the built-in skill vocabulary covering languages,
// frameworks, databases, tooling, methodology and data/ML terms.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(defaultSkillEntries)
	if err != nil {
		// The built-in table is non-empty by construction.
		panic(err)
	}
	return v
}

var defaultSkillEntries = []VocabEntry{
	// Languages
	{"js", "JavaScript"},
	{"javascript", "JavaScript"},
	{"py", "Python"},
	{"python", "Python"},
	{"java", "Java"},
	{"c++", "C++"},
	{"cpp", "C++"},
	{"c#", "C#"},
	{"csharp", "C#"},
	{"html", "HTML"},
	{"css", "CSS"},
	{"php", "PHP"},
	{"typescript", "TypeScript"},
	{"ts", "TypeScript"},
	{"go", "Go"},
	{"golang", "Go"},
	{"rust", "Rust"},
	{"swift", "Swift"},
	{"kotlin", "Kotlin"},
	{"scala", "Scala"},
	{"r", "R"},
	{"matlab", "MATLAB"},

	// Frameworks
	{"react", "React"},
	{"reactjs", "React"},
	{"react.js", "React"},
	{"angular", "Angular"},
	{"angularjs", "Angular"},
	{"vue", "Vue.js"},
	{"vuejs", "Vue.js"},
	{"vue.js", "Vue.js"},
	{"node", "Node.js"},
	{"nodejs", "Node.js"},
	{"node.js", "Node.js"},
	{"express", "Express.js"},
	{"expressjs", "Express.js"},
	{"express.js", "Express.js"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"spring", "Spring"},
	{"springboot", "Spring Boot"},
	{"spring boot", "Spring Boot"},
	{"laravel", "Laravel"},
	{"rails", "Ruby on Rails"},
	{"ruby on rails", "Ruby on Rails"},
	{"bootstrap", "Bootstrap"},
	{"jquery", "jQuery"},
	{"redux", "Redux"},

	// Databases
	{"sql", "SQL"},
	{"mysql", "MySQL"},
	{"postgresql", "PostgreSQL"},
	{"postgres", "PostgreSQL"},
	{"mongodb", "MongoDB"},
	{"mongo", "MongoDB"},
	{"redis", "Redis"},
	{"elasticsearch", "Elasticsearch"},
	{"oracle", "Oracle"},
	{"sqlite", "SQLite"},
	{"cassandra", "Cassandra"},
	{"neo4j", "Neo4j"},

	// Tooling & cloud
	{"git", "Git"},
	{"github", "GitHub"},
	{"gitlab", "GitLab"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"k8s", "Kubernetes"},
	{"jenkins", "Jenkins"},
	{"aws", "AWS"},
	{"amazon web services", "AWS"},
	{"azure", "Microsoft Azure"},
	{"gcp", "Google Cloud Platform"},
	{"google cloud", "Google Cloud Platform"},
	{"terraform", "Terraform"},
	{"ansible", "Ansible"},
	{"maven", "Maven"},
	{"gradle", "Gradle"},
	{"npm", "NPM"},
	{"webpack", "Webpack"},
	{"babel", "Babel"},
	{"eslint", "ESLint"},
	{"jest", "Jest"},
	{"junit", "JUnit"},
	{"selenium", "Selenium"},
	{"postman", "Postman"},
	{"jira", "Jira"},
	{"confluence", "Confluence"},
	{"slack", "Slack"},
	{"trello", "Trello"},

	// Methodology
	{"agile", "Agile"},
	{"scrum", "Scrum"},
	{"kanban", "Kanban"},
	{"devops", "DevOps"},
	{"ci/cd", "CI/CD"},
	{"tdd", "Test-Driven Development"},
	{"bdd", "Behavior-Driven Development"},

	// Data & ML
	{"machine learning", "Machine Learning"},
	{"ml", "Machine Learning"},
	{"artificial intelligence", "Artificial Intelligence"},
	{"ai", "Artificial Intelligence"},
	{"deep learning", "Deep Learning"},
	{"neural networks", "Neural Networks"},
	{"tensorflow", "TensorFlow"},
	{"pytorch", "PyTorch"},
	{"scikit-learn", "Scikit-learn"},
	{"pandas", "Pandas"},
	{"numpy", "NumPy"},
	{"matplotlib", "Matplotlib"},
	{"seaborn", "Seaborn"},
	{"jupyter", "Jupyter"},
	{"data science", "Data Science"},
	{"data analysis", "Data Analysis"},
	{"data visualization", "Data Visualization"},
	{"statistics", "Statistics"},
	{"big data", "Big Data"},
	{"hadoop", "Hadoop"},
	{"spark", "Apache Spark"},
	{"kafka", "Apache Kafka"},
}
