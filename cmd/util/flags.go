package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/konhoe/BioM-AI/apps/rosetta"
	"github.com/konhoe/BioM-AI/config"
)

var (
	FlagVerbose = true

	// FlagRosetta overrides the toolkit root from $ROSETTA3 / the
	// config file.
	FlagRosetta = ""

	// FlagExperiments is the directory run workspaces are created in.
	FlagExperiments = "experiments"

	// FlagParamsDB is the residue parameter library used when a
	// pipeline has no explicit one.
	FlagParamsDB = ""

	// FlagWeights is the scoring weight-set identifier.
	FlagWeights = "ref2015"
)

func init() {
	log.SetFlags(0)

	// The optional defaults file is read exactly once, here at the
	// boundary. Command line flags still win over it.
	conf, err := config.Load()
	if Warning(err, "Ignoring config defaults") {
		return
	}
	if conf.Rosetta != "" {
		FlagRosetta = conf.Rosetta
	}
	if conf.Experiments != "" {
		FlagExperiments = conf.Experiments
	}
	if conf.ParamsDB != "" {
		FlagParamsDB = conf.ParamsDB
	}
	if conf.Weights != "" {
		FlagWeights = conf.Weights
	}
}

// Toolkit resolves the Rosetta installation for this invocation: the
// -rosetta flag (or config default) when given, the environment
// otherwise.
func Toolkit() rosetta.Toolkit {
	if FlagRosetta != "" {
		return rosetta.New(FlagRosetta)
	}
	return rosetta.FromEnv()
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, the invoked toolkit's output is echoed to the\n"+
					"terminal in addition to the run log.")
		},
	},
	"rosetta": {
		set: func() {
			flag.StringVar(&FlagRosetta, "rosetta", FlagRosetta,
				"The Rosetta installation root. Overrides $ROSETTA3.")
		},
	},
	"experiments": {
		set: func() {
			flag.StringVar(&FlagExperiments, "experiments", FlagExperiments,
				"The directory run workspaces are created under.")
		},
	},
	"params-db": {
		set: func() {
			flag.StringVar(&FlagParamsDB, "params-db", FlagParamsDB,
				"The directory holding residue '.params' files.")
		},
	},
	"weights": {
		set: func() {
			flag.StringVar(&FlagWeights, "weights", FlagWeights,
				"The scoring weight set passed to the toolkit.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
