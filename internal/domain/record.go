package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Record is a loosely-typed record as received from an upstream API or export.
// Nothing past the gateway layer should read a Record directly.
type Record map[string]any

// Candidate keys, in priority order, for fields whose name drifts upstream.
var (
	OrderNumberKeys = []string{"numpedrca", "NUMPEDRCA", "numPedido", "codigoPedidoMaxima"}
	BranchKeys      = []string{"filial", "nomeFilial"}
	CustomerKeys    = []string{"cliente", "nomeCliente"}
	ImportDateKeys  = []string{"dataImportacao", "dtIncluido"}
	OrderStatusKeys = []string{"status", "statusPedido"}
)

// Payment record keys.
const (
	keyBranchName    = "nomeFilial"
	keyCustomerName  = "nomeCliente"
	keyOrder         = "pedido"
	keyOrderCode     = "codigoPedidoMaxima"
	keyPaymentDate   = "dtIncluido"
	keyAmount        = "valor"
	keyGateway       = "nomeGateway"
	keyPaymentStatus = "statusPagamento"
)

// FirstTruthy returns the first truthy value stored under keys, or def.
func FirstTruthy(r Record, keys []string, def any) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && truthy(v) {
			return v
		}
	}
	return def
}

// Nested returns the sub-record stored under key, or nil.
func (r Record) Nested(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	}
	return true
}

// AsString coerces an upstream scalar to its textual form. Integral floats
// render without a fraction so numeric order codes keep their digits.
func AsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func optionalString(v any) *string {
	if v == nil {
		return nil
	}
	s := AsString(v)
	return &s
}

func firstTruthyString(r Record, keys []string) *string {
	return optionalString(FirstTruthy(r, keys, nil))
}

// CleanToken strips quotes, the bearer prefix and surrounding whitespace.
func CleanToken(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.NewReplacer("'", "", `"`, "").Replace(t)
	if len(t) >= 7 && strings.EqualFold(t[:7], "bearer ") {
		t = t[7:]
	}
	return strings.TrimSpace(t)
}
