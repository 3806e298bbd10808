package rosetta

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/BurntSushi/cmd"
)

// RunConfig controls how a Rosetta application is invoked. The binary
// receives its flags file through the toolkit's '@file' convention and
// runs with Dir as its working directory, so all workspace-relative
// paths in the flags resolve correctly.
type RunConfig struct {
	// Dir is the run workspace root.
	Dir string

	// LogPath receives the merged stdout+stderr stream of the child.
	LogPath string

	// Echo additionally streams the merged output to this process's
	// stdout, so the operator sees it live.
	Echo bool
}

// Run invokes 'binary @flagsPath' and blocks until it exits. The child's
// stdout and stderr are merged into one stream and written to the log
// file (and the terminal when Echo is set). The returned error carries
// the child's own exit status; the log tee can never mask it.
func (conf RunConfig) Run(binary, flagsPath string) error {
	job, err := conf.Start(binary, flagsPath)
	if err != nil {
		return err
	}
	return job.Wait()
}

// Start launches 'binary @flagsPath' without waiting, so the caller can
// report the child PID before blocking on Wait. Surface docking runs use
// this for operator visibility on long jobs.
func (conf RunConfig) Start(binary, flagsPath string) (*Job, error) {
	logFile, err := os.Create(conf.LogPath)
	if err != nil {
		return nil, fmt.Errorf("could not create log file: %w", err)
	}

	out := io.Writer(logFile)
	if conf.Echo {
		out = io.MultiWriter(os.Stdout, logFile)
	}

	c := cmd.New(binary, "@"+flagsPath)
	c.Cmd.Dir = conf.Dir
	c.Cmd.Stdout = out
	c.Cmd.Stderr = out
	if err := c.Cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("could not start %s: %w", binary, err)
	}
	return &Job{cmd: c.Cmd, log: logFile, logPath: conf.LogPath}, nil
}

// Job is a running Rosetta application.
type Job struct {
	cmd     *exec.Cmd
	log     *os.File
	logPath string
}

// PID returns the child's process identifier.
func (j *Job) PID() int {
	return j.cmd.Process.Pid
}

// Wait blocks until the child exits and reports its exit status. A
// nonzero exit is returned as an error naming the code and the log file
// to inspect.
func (j *Job) Wait() error {
	err := j.cmd.Wait()
	j.log.Close()
	if err == nil {
		return nil
	}
	if exit, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("%s exited with status %d (see %s)",
			j.cmd.Path, exit.ExitCode(), j.logPath)
	}
	return err
}
