package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/41v4/img-manipulation/config"
	"github.com/41v4/img-manipulation/normalize"
)

var cmdNormalize = &Command{
	UsageLine: "normalize [-height 400] [-config imgnorm.yaml] [-replace] dir",
	Short:     "resize images to the target height and convert non png/jpg to jpg",
	Long: `
normalize visits every image directly inside dir. Images shorter than the
target height are upscaled, taller ones downscaled, keeping the aspect
ratio. Anything that is not png or jpg is flattened and written as .jpg.
Files that can not be processed are reported and skipped.
`,
}

var cmdPlan = &Command{
	UsageLine: "plan [-height 400] [-config imgnorm.yaml] dir",
	Short:     "show what normalize would do, without writing",
	Long: `
plan classifies every image inside dir and prints the decision and the
output path. Nothing is written.
`,
}

var cmdVersion = &Command{
	UsageLine: "version",
	Short:     "print the version",
	Long: `
print the version
`,
}

var (
	nflags = addPolicyFlags(&cmdNormalize.Flag)
	pflags = addPolicyFlags(&cmdPlan.Flag)
)

func init() {
	cmdNormalize.Run = runNormalize
	cmdPlan.Run = runPlan
	cmdVersion.Run = func(args []string) bool {
		fmt.Println("imgnorm", config.Version)
		return true
	}
}

func runNormalize(args []string) bool {
	return run(args, nflags, false)
}

func runPlan(args []string) bool {
	return run(args, pflags, true)
}

func run(args []string, pf *policyFlags, dryRun bool) bool {
	if len(args) != 1 {
		return false
	}
	policy, err := pf.policy()
	if err != nil {
		errorf("config: %s", err)
		setExitStatus(2)
		return true
	}

	opts := []normalize.Option{normalize.WithDryRun(dryRun)}
	if pf.noLock {
		opts = append(opts, normalize.WithoutLock())
	}
	p, err := normalize.New(policy, opts...)
	if err != nil {
		errorf("%s", err)
		setExitStatus(2)
		return true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := p.Run(ctx, args[0])
	if r != nil {
		if pf.showList {
			r.Print(os.Stdout)
		} else {
			fmt.Printf("total: %d, written: %d, noop: %d, planned: %d, skipped: %d\n",
				r.Total, r.Written, r.NoOp, r.Planned, r.Skipped)
		}
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			errorf("%s", err)
		}
		logger().Errorw("run fail", "dir", args[0], "err", err)
		setExitStatus(1)
		return true
	}
	if pf.strict && r.Skipped > 0 {
		setExitStatus(1)
	}
	return true
}
