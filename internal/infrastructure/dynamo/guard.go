package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Atributos comunes.
const (
	attrID     = "id"
	attrKind   = "kind"
	attrTarget = "target"
)

// Valores de kind.
const (
	kindProduct  = "product"
	kindCategory = "category"
	kindBrand    = "brand"
	kindUser     = "user"
	kindGuard    = "guard"
)

// Resultado de una transacción cancelada por condición.
var (
	errItemCondition = errors.New("item condition failed")
	errGuardTaken    = errors.New("unique key taken")
)

func modelGuard(key string) string    { return guardID("model", key) }
func nameGuard(key string) string     { return guardID("name", key) }
func usernameGuard(key string) string { return guardID("username", key) }

func guardID(prefix, key string) string {
	if key == "" {
		return ""
	}
	return prefix + "#" + key
}

// guardedWrite escribe item junto con el cambio de ítem guardia.
// oldGuard/newGuard vacíos indican que no hay guardia antes/después.
type guardedWrite struct {
	table    string
	id       string
	item     map[string]types.AttributeValue
	create   bool
	oldGuard string
	newGuard string
}

func (w guardedWrite) transactItems() []types.TransactWriteItem {
	cond := "attribute_not_exists(#id)"
	if !w.create {
		cond = "attribute_exists(#id)"
	}
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(w.table),
			Item:                     w.item,
			ConditionExpression:      aws.String(cond),
			ExpressionAttributeNames: map[string]string{"#id": attrID},
		},
	}}
	if w.oldGuard == w.newGuard {
		return items
	}
	owned := "attribute_not_exists(#id) OR #target = :owner"
	names := map[string]string{"#id": attrID, "#target": attrTarget}
	values := map[string]types.AttributeValue{":owner": str(w.id)}
	if w.oldGuard != "" {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                 aws.String(w.table),
				Key:                       keyOf(w.oldGuard),
				ConditionExpression:       aws.String(owned),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
		})
	}
	if w.newGuard != "" {
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(w.table),
				Item: map[string]types.AttributeValue{
					attrID:     str(w.newGuard),
					attrKind:   str(kindGuard),
					attrTarget: str(w.id),
				},
				ConditionExpression:       aws.String(owned),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
		})
	}
	return items
}

func (s *Store) writeGuarded(ctx context.Context, w guardedWrite) error {
	_, err := s.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: w.transactItems(),
	})
	return classify(err)
}

// classify convierte la cancelación de la transacción en errItemCondition
// (falló la condición del ítem principal) o errGuardTaken (clave ocupada).
func classify(err error) error {
	if err == nil {
		return nil
	}
	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for i, r := range canceled.CancellationReasons {
			if aws.ToString(r.Code) != "ConditionalCheckFailed" {
				continue
			}
			if i == 0 {
				return errItemCondition
			}
			return errGuardTaken
		}
	}
	return err
}

// resolveGuard devuelve el id de la entidad dueña de la guardia; "" si no existe.
func (s *Store) resolveGuard(ctx context.Context, table, guard string) (string, error) {
	item, err := s.getItem(ctx, table, guard)
	if err != nil || item == nil {
		return "", err
	}
	v, ok := item[attrTarget].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return v.Value, nil
}
