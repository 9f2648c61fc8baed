// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// TxIn references one output of a previous transaction by id and
// zero-based output position.
type TxIn struct {
	ID    TxID   `yaml:"id"`
	Index uint32 `yaml:"index"`
}

// ParseTxIn parses a transaction input token of the form
// "(txid,index)" where txid is hex and index is a non-negative
// integer.
func ParseTxIn(raw string) (TxIn, error) {
	idText, indexText, err := splitPair(raw)
	if err != nil {
		return TxIn{}, fmt.Errorf("transaction input %q: %w", raw, err)
	}
	id, err := ParseTxID(idText)
	if err != nil {
		return TxIn{}, fmt.Errorf("transaction input %q: %w", raw, err)
	}
	index, err := strconv.ParseUint(indexText, 10, 32)
	if err != nil {
		return TxIn{}, fmt.Errorf("transaction input %q: index %q is not a non-negative integer", raw, indexText)
	}
	return TxIn{ID: id, Index: uint32(index)}, nil
}

// String renders the input in its token form.
func (in TxIn) String() string {
	return fmt.Sprintf("(%s,%d)", in.ID, in.Index)
}

// TxOut pairs a destination address with a validated amount.
type TxOut struct {
	Address Address  `yaml:"address"`
	Amount  Lovelace `yaml:"amount"`
}

// ParseTxOut parses a transaction output token of the form
// "(address,amount)" where address is checksummed base58 and amount
// is a bounded lovelace quantity.
func ParseTxOut(raw string) (TxOut, error) {
	addressText, amountText, err := splitPair(raw)
	if err != nil {
		return TxOut{}, fmt.Errorf("transaction output %q: %w", raw, err)
	}
	address, err := ParseAddress(addressText)
	if err != nil {
		return TxOut{}, fmt.Errorf("transaction output %q: %w", raw, err)
	}
	amount, err := ParseLovelace(amountText)
	if err != nil {
		return TxOut{}, fmt.Errorf("transaction output %q: %w", raw, err)
	}
	return TxOut{Address: address, Amount: amount}, nil
}

// String renders the output in its token form.
func (out TxOut) String() string {
	return fmt.Sprintf("(%s,%s)", out.Address, out.Amount)
}

// splitPair dissects a "(first,second)" token. The comma split is on
// the last comma so that the first element may itself contain commas.
func splitPair(raw string) (string, string, error) {
	if !strings.HasPrefix(raw, "(") || !strings.HasSuffix(raw, ")") {
		return "", "", fmt.Errorf("expected parenthesized pair \"(x,y)\"")
	}
	inner := raw[1 : len(raw)-1]
	index := strings.LastIndexByte(inner, ',')
	if index < 0 {
		return "", "", fmt.Errorf("expected comma-separated pair \"(x,y)\"")
	}
	first := strings.TrimSpace(inner[:index])
	second := strings.TrimSpace(inner[index+1:])
	if first == "" || second == "" {
		return "", "", fmt.Errorf("pair element is empty")
	}
	return first, second, nil
}

// TxIns accumulates repeated --txin occurrences in command-line
// order. It implements pflag.Value; each occurrence appends.
type TxIns []TxIn

// Set implements pflag.Value.
func (ins *TxIns) Set(raw string) error {
	in, err := ParseTxIn(raw)
	if err != nil {
		return err
	}
	*ins = append(*ins, in)
	return nil
}

// String implements pflag.Value.
func (ins TxIns) String() string {
	return joinTokens(len(ins), func(i int) string { return ins[i].String() })
}

// Type implements pflag.Value.
func (ins TxIns) Type() string {
	return "txin"
}

// TxOuts accumulates repeated --txout occurrences in command-line
// order. It implements pflag.Value; each occurrence appends.
type TxOuts []TxOut

// Set implements pflag.Value.
func (outs *TxOuts) Set(raw string) error {
	out, err := ParseTxOut(raw)
	if err != nil {
		return err
	}
	*outs = append(*outs, out)
	return nil
}

// String implements pflag.Value.
func (outs TxOuts) String() string {
	return joinTokens(len(outs), func(i int) string { return outs[i].String() })
}

// Type implements pflag.Value.
func (outs TxOuts) Type() string {
	return "txout"
}

func joinTokens(n int, token func(int) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(token(i))
	}
	b.WriteByte(']')
	return b.String()
}
