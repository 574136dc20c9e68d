package config

// Configfile represents the structure of the sroot.yaml configuration file.
type Configfile struct {
	Version          string     `yaml:"version"`
	Src              string     `yaml:"src"`
	Dest             string     `yaml:"dest"`
	Recipes          string     `yaml:"recipes"`
	Mount            *string    `yaml:"mount"`
	Data             string     `yaml:"data"`
	Mirror           string     `yaml:"mirror"`
	Target           string     `yaml:"target"`
	CompilerTarget   string     `yaml:"compilerTarget"`
	Jobs             int        `yaml:"jobs"`
	Prefetch         int        `yaml:"prefetch"`
	Rolling          []string   `yaml:"rolling"`
	CompilerFamilies []string   `yaml:"compilerFamilies"`
	Manager          ManagerDTO `yaml:"manager"`
	Meta             MetaDTO    `yaml:"meta"`
}

// ManagerDTO configures the package manager checkout.
type ManagerDTO struct {
	URL        string       `yaml:"url"`
	Tag        string       `yaml:"tag"`
	DefaultTag string       `yaml:"defaultTag"`
	Tags       []TagRuleDTO `yaml:"tags"`
	Strategy   string       `yaml:"strategy"`
}

// TagRuleDTO maps a release constraint to a package manager tag.
type TagRuleDTO struct {
	Release string `yaml:"release"`
	Tag     string `yaml:"tag"`
}

// MetaDTO configures metaproject sources.
type MetaDTO struct {
	GitURL         string `yaml:"gitURL"`
	SVNURL         string `yaml:"svnURL"`
	SVNUser        string `yaml:"svnUser"`
	SVNPasswordEnv string `yaml:"svnPasswordEnv"`
}
