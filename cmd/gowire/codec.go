package main

import "encoding/hex"
import "fmt"
import "strconv"

import "github.com/spf13/cobra"

import "github.com/tlclabs/gowire"

var encodeCmd = &cobra.Command{
	Use:   "encode TYPE VALUE",
	Short: "Encode a value into its TL wire form, printed as hex",
	Long: `Encode a value into its TL wire form. TYPE is one of int32,
int64, float64, bool, string, bytes (VALUE in hex).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := encodeValue(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode TYPE HEX",
	Short: "Decode a TL wire value from hex",
	Long: `Decode a TL wire value from hex. TYPE is one of int32, int64,
float64, bool, string, bytes, object. Objects dispatch on their
constructor id through the core registry.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := hex.DecodeString(args[1])
		if err != nil {
			return err
		}
		return decodeValue(args[0], in)
	},
}

func encodeValue(typ, value string) ([]byte, error) {
	switch typ {
	case "int32":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 4)
		gowire.Int32ToTL(int32(v), out)
		return out, nil

	case "int64":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 8)
		gowire.Int64ToTL(v, out)
		return out, nil

	case "float64":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 8)
		gowire.Float64ToTL(v, out)
		return out, nil

	case "bool":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 4)
		gowire.BoolToTL(v, out)
		return out, nil

	case "string":
		out := make([]byte, gowire.BytesTLSize(len(value)))
		n, err := gowire.TextToTL(value, out)
		if err != nil {
			return nil, err
		}
		return out[:n], nil

	case "bytes":
		data, err := hex.DecodeString(value)
		if err != nil {
			return nil, err
		}
		out := make([]byte, gowire.BytesTLSize(len(data)))
		n, err := gowire.BytesToTL(data, out)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	}
	return nil, fmt.Errorf("unknown type %q", typ)
}

func decodeValue(typ string, in []byte) error {
	switch typ {
	case "int32":
		v, _, err := gowire.TLToInt32(in)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "int64":
		v, _, err := gowire.TLToInt64(in)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "float64":
		v, _, err := gowire.TLToFloat64(in)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "bool":
		v, _, err := gowire.TLToBool(in)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "string":
		v, _, err := gowire.TLToText(in)
		if err != nil {
			return err
		}
		fmt.Println(v)

	case "bytes":
		v, _, err := gowire.TLToBytes(in)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(v))

	case "object":
		registry := gowire.KnownConstructors(gowire.NewRegistry())
		obj, _, err := gowire.TLToObject(registry, in)
		if err != nil {
			return err
		}
		name, _ := registry.Lookup(obj.ID())
		fmt.Printf("%s %v\n", name, obj)

	default:
		return fmt.Errorf("unknown type %q", typ)
	}
	return nil
}
