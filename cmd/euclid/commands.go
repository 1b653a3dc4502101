package main

import (
	"fmt"
	"os"

	"euclid/internal/config"
	"euclid/internal/logging"
	"euclid/model"
	"euclid/pipeline"
	"euclid/stl"
	vm "euclid/vector_math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "euclid",
		Short:         "3D vector, matrix and quaternion toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./euclid.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level, overrides the config file")
	rootCmd.PersistentFlags().Bool("degrees", false, "angles are given and printed in degree")

	rootCmd.AddCommand(
		a.composeCmd(),
		a.meshCmd(),
		a.quatCmd(),
		a.slerpCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := a.v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return err
	}
	if err := a.v.BindPFlag("degrees", flags.Lookup("degrees")); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	zap.ReplaceGlobals(logger)
	vm.SetLogger(logger.Named("vector_math"))

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", zap.String("path", used))
	}
	return nil
}

func (a *app) angleIn(x float64) float64 {
	if a.cfg.Degrees {
		return vm.ToRad(x)
	}
	return x
}

func (a *app) angleOut(x float64) float64 {
	if a.cfg.Degrees {
		return vm.ToDeg(x)
	}
	return x
}

func (a *app) composeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <pipeline.yaml>",
		Short: "Print the matrix composed from a transform pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := composeFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatMatrix(m, a.cfg.Precision, a.cfg.Layout))
			return nil
		},
	}
}

func composeFile(path string) (vm.Matrix4, error) {
	p, err := pipeline.LoadFile(path)
	if err != nil {
		return vm.Matrix4{}, err
	}
	return p.Compose()
}

func (a *app) meshCmd() *cobra.Command {
	var stlIn, stlOut string

	cmd := &cobra.Command{
		Use:   "mesh <pipeline.yaml>",
		Short: "Transform a mesh by a pipeline and print its bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := composeFile(args[0])
			if err != nil {
				return err
			}

			mesh := model.NewCubeMesh()
			if stlIn != "" {
				if mesh, err = stl.ReadStlFile(stlIn); err != nil {
					return err
				}
			}
			out := mesh.ApplyMatrix4(m)

			lo, hi := out.Bounds()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices: %d\n", len(out.Vertices))
			fmt.Fprintf(w, "min: %s\n", formatFloats(a.cfg.Precision, lo.Slice()...))
			fmt.Fprintf(w, "max: %s\n", formatFloats(a.cfg.Precision, hi.Slice()...))

			if stlOut == "" {
				return nil
			}
			f, err := os.Create(stlOut)
			if err != nil {
				return err
			}
			if err := stl.WriteStl(f, "euclid "+args[0], out); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&stlIn, "stl", "", "binary STL file to transform instead of the unit cube")
	cmd.Flags().StringVar(&stlOut, "out", "", "write the transformed mesh as binary STL")
	return cmd
}

func (a *app) quatCmd() *cobra.Command {
	var angle float64
	var axis []float64

	cmd := &cobra.Command{
		Use:   "quat",
		Short: "Print the quaternion for an axis-angle rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ax, err := vm.Vector3FromSlice(axis)
			if err != nil {
				return err
			}
			q := vm.NewQuaternionRotateAxis(a.angleIn(angle), ax)
			a.printQuaternion(cmd, q)
			return nil
		},
	}

	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle")
	cmd.Flags().Float64SliceVar(&axis, "axis", []float64{0, 0, 1}, "rotation axis x,y,z")
	return cmd
}

func (a *app) slerpCmd() *cobra.Command {
	var fromAngle, toAngle, t float64
	var fromAxis, toAxis []float64

	cmd := &cobra.Command{
		Use:   "slerp",
		Short: "Interpolate between two axis-angle rotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := vm.Vector3FromSlice(fromAxis)
			if err != nil {
				return err
			}
			ta, err := vm.Vector3FromSlice(toAxis)
			if err != nil {
				return err
			}
			q1 := vm.NewQuaternionRotateAxis(a.angleIn(fromAngle), fa)
			q2 := vm.NewQuaternionRotateAxis(a.angleIn(toAngle), ta)
			a.printQuaternion(cmd, vm.Interpolate(q1, q2, t))
			return nil
		},
	}

	cmd.Flags().Float64Var(&fromAngle, "from-angle", 0, "start rotation angle")
	cmd.Flags().Float64SliceVar(&fromAxis, "from-axis", []float64{0, 0, 1}, "start rotation axis x,y,z")
	cmd.Flags().Float64Var(&toAngle, "to-angle", 0, "end rotation angle")
	cmd.Flags().Float64SliceVar(&toAxis, "to-axis", []float64{0, 0, 1}, "end rotation axis x,y,z")
	cmd.Flags().Float64Var(&t, "t", 0.5, "interpolation parameter in [0, 1]")
	return cmd
}

func (a *app) printQuaternion(cmd *cobra.Command, q vm.Quaternion) {
	p := a.cfg.Precision
	w := cmd.OutOrStdout()
	h, att, b := q.Euler()
	angle, axis := q.AngleAxis()
	fmt.Fprintf(w, "quaternion: %s\n", formatFloats(p, q.W, q.X, q.Y, q.Z))
	fmt.Fprintf(w, "angle: %s axis: %s\n", formatFloats(p, a.angleOut(angle)), formatFloats(p, axis.Slice()...))
	fmt.Fprintf(w, "euler: %s\n", formatFloats(p, a.angleOut(h), a.angleOut(att), a.angleOut(b)))
	fmt.Fprintln(w, formatMatrix(q.Matrix(), p, a.cfg.Layout))
}
