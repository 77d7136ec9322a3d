package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	isync "github.com/jhoicas/storesage/internal/sync"
	"github.com/jhoicas/storesage/internal/sync/mirror"
	"github.com/jhoicas/storesage/internal/sync/remote"
)

func (a *app) dispatch(ctx context.Context, cmd []string) error {
	switch cmd[0] {
	case "bootstrap":
		a.importer.Run(ctx, &isync.ImportState{})
		return nil
	case "mirror":
		if len(cmd) < 2 || cmd[1] != "clear" {
			return fmt.Errorf("%w: mirror clear", errUsage)
		}
		if err := mirror.Clear(ctx, a.mirror); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "espejo local borrado")
		return nil
	}

	kind, err := isync.ParseKind(cmd[0])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if len(cmd) < 2 {
		return fmt.Errorf("%w: falta la acción para %s", errUsage, kind)
	}
	action, rest := cmd[1], cmd[2:]

	switch action {
	case "list":
		return a.list(ctx, kind)
	case "get":
		id, err := singleID(rest)
		if err != nil {
			return err
		}
		res, err := a.gateway.Get(ctx, kind, id)
		return a.print(res, err)
	case "add":
		payload, err := parsePayload(kind, rest, false)
		if err != nil {
			return err
		}
		res, err := a.gateway.Create(ctx, kind, payload)
		return a.print(a.refresh(ctx, kind, res, err))
	case "update":
		if kind != isync.KindProducts {
			break
		}
		return a.updateProduct(ctx, rest)
	case "return":
		if kind != isync.KindBorrowed {
			break
		}
		id, err := singleID(rest)
		if err != nil {
			return err
		}
		res, err := a.gateway.MarkReturned(ctx, id)
		return a.print(a.refresh(ctx, kind, res, err))
	case "delete":
		if kind == isync.KindBorrowed {
			break
		}
		id, err := singleID(rest)
		if err != nil {
			return err
		}
		res, err := a.gateway.Delete(ctx, kind, id)
		return a.print(a.refresh(ctx, kind, res, err))
	}
	return fmt.Errorf("%w: acción %q no soportada para %s", errUsage, action, kind)
}

func (a *app) list(ctx context.Context, kind isync.Kind) error {
	res, err := a.gateway.List(ctx, kind)
	if err != nil {
		return err
	}
	if res.Offline {
		fmt.Fprintln(a.errOut, "sin conexión: mostrando el espejo local")
	}
	return writeJSON(a.out, res.Records)
}

// updateProduct completa el payload con el producto actual para que la API (que reemplaza todos
// los campos) no pierda los que no se indicaron. Sin conexión se envían solo los flags dados
// y el gateway los mezcla sobre el registro del espejo.
func (a *app) updateProduct(ctx context.Context, args []string) error {
	changes, ids, err := parseFlags(isync.KindProducts, args, true)
	if err != nil {
		return err
	}
	if len(ids) != 1 {
		return fmt.Errorf("%w: products update <id> [flags]", errUsage)
	}
	id := ids[0]

	payload := mirror.Record{}
	current, err := a.gateway.Get(ctx, isync.KindProducts, id)
	switch {
	case err == nil:
		for k, v := range current.Record {
			payload[k] = v
		}
		delete(payload, "id")
	case errors.Is(err, remote.ErrTransport):
	default:
		return err
	}
	for k, v := range changes {
		payload[k] = v
	}
	res, err := a.gateway.Update(ctx, isync.KindProducts, id, payload)
	return a.print(a.refresh(ctx, isync.KindProducts, res, err))
}

// refresh vuelve a listar la colección tras una escritura online para que el espejo refleje
// el servidor. Sin esto, la importación del siguiente arranque recrearía lo eliminado.
func (a *app) refresh(ctx context.Context, kind isync.Kind, res *isync.Result, err error) (*isync.Result, error) {
	if err != nil || res.Offline {
		return res, err
	}
	if _, listErr := a.gateway.List(ctx, kind); listErr != nil {
		a.log.Warn().Err(listErr).Str("kind", string(kind)).Msg("no se pudo refrescar el espejo local")
	}
	return res, nil
}

func (a *app) print(res *isync.Result, err error) error {
	if err != nil {
		return err
	}
	if res.Offline {
		fmt.Fprintln(a.errOut, "sin conexión: cambio guardado en el espejo local")
	}
	if res.Record == nil {
		fmt.Fprintln(a.out, "ok")
		return nil
	}
	return writeJSON(a.out, res.Record)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func singleID(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: se espera un id", errUsage)
	}
	return args[0], nil
}

func parsePayload(kind isync.Kind, args []string, partial bool) (mirror.Record, error) {
	payload, rest, err := parseFlags(kind, args, partial)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: argumentos sobrantes %v", errUsage, rest)
	}
	return payload, nil
}

// parseFlags traduce los flags de alta/edición a un payload camelCase. Solo se incluyen los
// flags indicados explícitamente, para que la API aplique sus valores por defecto.
func parseFlags(kind isync.Kind, args []string, partial bool) (mirror.Record, []string, error) {
	fs := pflag.NewFlagSet(string(kind), pflag.ContinueOnError)
	var fields []field
	switch kind {
	case isync.KindProducts:
		fields = []field{
			{flag: "name", key: "name", required: true},
			{flag: "quantity", key: "quantity", isInt: true},
			{flag: "shelf", key: "shelfNumber", required: true},
			{flag: "min", key: "minQuantity", isInt: true},
			{flag: "expires", key: "expirationDate"},
			{flag: "category", key: "category"},
			{flag: "description", key: "description"},
		}
	case isync.KindBorrowed:
		fields = []field{
			{flag: "product-id", key: "productId"},
			{flag: "product", key: "productName", required: true},
			{flag: "borrower", key: "borrowerName", required: true},
			{flag: "quantity", key: "quantity", isInt: true, required: true},
		}
	case isync.KindReminders:
		fields = []field{
			{flag: "product", key: "productName", required: true},
			{flag: "note", key: "note", required: true},
			{flag: "priority", key: "priority"},
		}
	}
	for _, f := range fields {
		if f.isInt {
			fs.Int(f.flag, 0, f.key)
		} else {
			fs.String(f.flag, "", f.key)
		}
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	payload := mirror.Record{}
	for _, f := range fields {
		if !fs.Changed(f.flag) {
			if f.required && !partial {
				return nil, nil, fmt.Errorf("%w: --%s es requerido", errUsage, f.flag)
			}
			continue
		}
		if f.isInt {
			v, _ := fs.GetInt(f.flag)
			payload[f.key] = v
		} else {
			v, _ := fs.GetString(f.flag)
			payload[f.key] = v
		}
	}
	return payload, fs.Args(), nil
}

type field struct {
	flag     string
	key      string
	isInt    bool
	required bool
}
