// This file is part of glatlas.
//
// glatlas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glatlas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glatlas.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/glatlas/atlas"
	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/modalflag"
	"github.com/jetsetilly/glatlas/paths"
	"github.com/jetsetilly/glatlas/pixels"
	"github.com/jetsetilly/glatlas/pixels/sdlimage"
	"github.com/jetsetilly/glatlas/prefs"
	"github.com/jetsetilly/glatlas/resources"
	"github.com/jetsetilly/glatlas/texture"
	"github.com/jetsetilly/glatlas/version"
	"github.com/jetsetilly/glatlas/window"
)

// exit value for all errors
const errorExit = 10

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. SDL
// and OpenGL must be used from the main thread, so functions that use them
// are sent to the main thread to be run.
type mainSync struct {
	state chan stateRequest

	// function to run on the main thread. the result is returned on runResult
	run       chan func() error
	runResult chan error
}

// onMainThread runs the function on the main thread and waits for it to
// complete.
func (sync *mainSync) onMainThread(f func() error) error {
	sync.run <- f
	return <-sync.runResult
}

func init() {
	// main() runs on the main thread only if the thread is locked during
	// initialisation
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:     make(chan stateRequest),
		run:       make(chan func() error),
		runResult: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case f := <-sync.run:
			sync.runResult <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to run
// functions on the main thread and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("INFO", "CHECK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, os.Stdout)

	case "CHECK":
		err = check(md, sync, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to the INFO and CHECK modes
type options struct {
	resources *string
	wrap      *string
	prefs     *string
	echo      *bool
	log       *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		resources: md.AddString("resources", "", "directory that relative atlas paths are resolved from"),
		wrap:      md.AddString("wrap", "", "texture wrap mode for both axes. overrides preferences"),
		prefs:     md.AddString("prefs", "", "preferences for this run only. eg. \"texture.wrapS::clamp-to-edge\""),
		echo:      md.AddBool("echo", false, "echo log to terminal"),
		log:       md.AddBool("log", false, "print the log after the report"),
	}
}

// setup applies the options and loads the preferences. the loader is
// configured with the texture preferences and the -wrap flag
func (opts options) setup(ldr *texture.Loader, output io.Writer) (*preferences, error) {
	err := resources.SetRoot(*opts.resources)
	if err != nil {
		return nil, err
	}

	fn, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	pref, err := newPreferences(fn)
	if err != nil {
		return nil, err
	}
	texPref, err := texture.NewPreferences(fn)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*opts.prefs)
	err = pref.load()
	if err == nil {
		err = texPref.Load()
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "glatlas", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if *opts.echo || pref.echo.Get().(bool) {
		logger.SetEcho(logger.NewColorizer(output), true)
	}

	err = texPref.Apply(ldr)
	if err != nil {
		return nil, err
	}

	if *opts.wrap != "" {
		w, err := gpu.ParseWrap(*opts.wrap)
		if err != nil {
			return nil, err
		}
		ldr.SetWrapMode(w)
	}

	return pref, nil
}

// finish is called at the end of the INFO and CHECK modes. the last entries
// in the log are printed if there was an error
func (opts options) finish(output io.Writer, pref *preferences, err error) {
	logger.SetEcho(nil, false)

	if *opts.log {
		fmt.Fprintln(output, "log:")
		logger.Write(output)
		return
	}

	if err != nil && pref != nil && !*opts.echo && !pref.echo.Get().(bool) {
		if n := pref.logTail.Get().(int); n > 0 {
			fmt.Fprintln(output, "log:")
			logger.Tail(output, n)
		}
	}
}

func atlasHelp(mode string) string {
	wraps := make([]string, 0, len(gpu.WrapList))
	for _, w := range gpu.WrapList {
		wraps = append(wraps, w.String())
	}
	return fmt.Sprintf("usage: %s %s [flags] <atlas.plist>\n\nwrap modes: %s",
		version.ApplicationName, strings.ToLower(mode), strings.Join(wraps, ", "))
}

func atlasArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("atlas file required")
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments")
}

// info loads the atlas without a GPU and reports its contents.
func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(atlasHelp("INFO"))
	opts := addOptions(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	path, err := atlasArg(md)
	if err != nil {
		return err
	}

	// log entries from a previous atlas are not reported
	logger.Clear()

	dev := gpu.NewNull()
	ldr := texture.NewLoader(dev, pixels.ImageDecoder{})
	pref, err := opts.setup(&ldr, output)
	if err != nil {
		return err
	}

	err = func() error {
		atl, err := atlas.Load(path, ldr)
		if err != nil {
			return err
		}
		defer atl.Destroy()

		report(output, atl, ldr, pref)

		return dev.Err()
	}()

	opts.finish(output, pref, err)

	return err
}

// check loads the atlas on the GPU using a hidden window.
func check(md *modalflag.Modes, sync *mainSync, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(atlasHelp("CHECK"))
	opts := addOptions(md)
	decoder := md.AddString("decoder", "go", "image decoder to use: go or sdl")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	path, err := atlasArg(md)
	if err != nil {
		return err
	}

	return sync.onMainThread(func() error {
		logger.Clear()

		win, err := window.New()
		if err != nil {
			return err
		}
		defer win.Destroy()

		dev, err := gpu.NewGL()
		if err != nil {
			return err
		}

		var dec pixels.Decoder
		switch strings.ToLower(*decoder) {
		case "go":
			dec = pixels.ImageDecoder{}
		case "sdl":
			sdec, err := sdlimage.NewDecoder()
			if err != nil {
				return err
			}
			defer sdec.Destroy()
			dec = sdec
		default:
			return fmt.Errorf("unknown decoder (%s)", *decoder)
		}

		ldr := texture.NewLoader(dev, dec)
		pref, err := opts.setup(&ldr, output)
		if err != nil {
			return err
		}

		err = func() error {
			atl, err := atlas.Load(path, ldr)
			if err != nil {
				return err
			}
			defer atl.Destroy()

			tex := atl.Texture()
			tex.Bind()
			if dev.BoundTexture() != tex.ID() {
				return fmt.Errorf("texture %d is not bound after Bind()", tex.ID())
			}
			tex.Unbind()

			fmt.Fprintf(output, "GL: %s\n", dev.Version())
			report(output, atl, ldr, pref)

			return nil
		}()

		opts.finish(output, pref, err)

		return err
	})
}

func report(output io.Writer, atl *atlas.Atlas, ldr texture.Loader, pref *preferences) {
	s, t := ldr.WrapModes()
	fmt.Fprintf(output, "atlas: %s\n", atl.Path())
	fmt.Fprintf(output, "size: %dx%d\n", atl.Size().X, atl.Size().Y)
	fmt.Fprintf(output, "%s (wrap %s/%s)\n", atl.Texture(), s, t)
	fmt.Fprintf(output, "frames: %d\n", atl.Len())

	tolerance := float32(pref.uvTolerance.Get().(float64))
	for _, n := range atl.Names() {
		r, _ := atl.FrameRect(n)
		if r.InUnitSquareWithin(tolerance) {
			fmt.Fprintf(output, "  %s: %s\n", n, r)
		} else {
			fmt.Fprintf(output, "  %s: %s (outside atlas image)\n", n, r)
		}
	}
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n", v, r)
	} else {
		fmt.Fprintln(output, version.String())
	}

	return nil
}
