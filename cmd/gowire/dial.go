package main

import "context"
import "fmt"
import "os"
import "time"

import "github.com/spf13/cobra"
import "github.com/spf13/viper"

import "github.com/tlclabs/gowire"

var dialCmd = &cobra.Command{
	Use:   "dial HOST PORT",
	Short: "Exercise pooled connections against an endpoint",
	Long: `Dial acquires and releases pooled connections against
HOST:PORT and prints the pool statistics, useful to validate
reachability and pool behavior against a datacenter.`,
	Args: cobra.ExactArgs(2),
	RunE: runDial,
}

func init() {
	dialCmd.Flags().Int("conns", 2, "connections to acquire")
	dialCmd.Flags().Int("maxconns", 8, "pool ceiling per endpoint")
	dialCmd.Flags().String("mode", string(gowire.ModeAbridged),
		"transport mode: abridged, intermediate, full")
	dialCmd.Flags().Duration("timeout", 10*time.Second, "dial deadline")
	viper.BindPFlag("conns", dialCmd.Flags().Lookup("conns"))
	viper.BindPFlag("maxconns", dialCmd.Flags().Lookup("maxconns"))
	viper.BindPFlag("mode", dialCmd.Flags().Lookup("mode"))
	viper.BindPFlag("timeout", dialCmd.Flags().Lookup("timeout"))
}

func runDial(cmd *cobra.Command, args []string) error {
	var port int
	if _, err := fmt.Sscanf(args[1], "%d", &port); err != nil {
		return fmt.Errorf("bad port %q: %v", args[1], err)
	}
	endpoint := gowire.Endpoint{Host: args[0], Port: port}
	mode := gowire.TransportMode(viper.GetString("mode"))
	timeout := viper.GetDuration("timeout")

	setts := gowire.DefaultSettings()
	setts["maxconns"] = viper.GetInt("maxconns")
	setts["dialtimeout"] = timeout.Milliseconds()

	pool := gowire.NewPool("gowire-dial", nil, setts)
	if err := pool.Start(); err != nil {
		return err
	}
	defer pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conns := make([]*gowire.Connection, 0, viper.GetInt("conns"))
	for i := 0; i < viper.GetInt("conns"); i++ {
		conn, err := pool.Get(ctx, endpoint, mode)
		if err != nil {
			return err
		}
		fmt.Printf("acquired %v (%v), idle %v\n",
			endpoint, mode, conn.Idletime())
		conns = append(conns, conn)
	}
	for _, conn := range conns {
		pool.Release(conn, true)
	}

	for k, v := range pool.Stat() {
		fmt.Printf("%-12v %v\n", k, v)
	}
	gowire.WriteMetrics(os.Stdout)
	return nil
}
