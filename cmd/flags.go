package cmd

import (
	"flag"
	"strings"

	"github.com/41v4/img-manipulation/config"
	"github.com/41v4/img-manipulation/image"
	"github.com/41v4/img-manipulation/normalize"
)

// policyFlags are shared by normalize and plan, a flag only overrides the
// loaded settings when given on the command line.
type policyFlags struct {
	fs       *flag.FlagSet
	config   string
	height   int
	quality  int
	interp   string
	bg       string
	replace  bool
	noLock   bool
	strict   bool
	showList bool
}

func addPolicyFlags(fs *flag.FlagSet) *policyFlags {
	pf := &policyFlags{fs: fs}
	fs.StringVar(&pf.config, "config", "", "yaml config file, default env IMGNORM_CONFIG")
	fs.IntVar(&pf.height, "height", config.DefaultTargetHeight, "target height in pixels")
	fs.IntVar(&pf.quality, "quality", config.DefaultJPEGQuality, "jpeg quality 1-100")
	fs.StringVar(&pf.interp, "interp", config.DefaultInterpolation,
		"resize interpolation: "+strings.Join(image.Interps(), ", "))
	fs.StringVar(&pf.bg, "bg", config.DefaultBackground, "flatten background colour")
	fs.BoolVar(&pf.replace, "replace", false, "remove the original after converting")
	fs.BoolVar(&pf.noLock, "nolock", false, "do not take the directory lock")
	fs.BoolVar(&pf.strict, "strict", false, "exit 1 when any file is skipped")
	fs.BoolVar(&pf.showList, "list", true, "print every file outcome")
	return pf
}

func (pf *policyFlags) settings() (config.Settings, error) {
	s, err := config.Load(pf.config)
	if err != nil {
		return s, err
	}
	pf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "height":
			s.TargetHeight = pf.height
		case "quality":
			s.JPEGQuality = pf.quality
		case "interp":
			s.Interpolation = pf.interp
		case "bg":
			s.Background = pf.bg
		case "replace":
			s.KeepOriginal = !pf.replace
		}
	})
	return s, nil
}

func (pf *policyFlags) policy() (normalize.Policy, error) {
	s, err := pf.settings()
	if err != nil {
		return normalize.Policy{}, err
	}
	return normalize.PolicyFrom(s)
}
