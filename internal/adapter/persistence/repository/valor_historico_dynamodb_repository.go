package repository

import (
	"context"

	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	valorHistoricoRequisicaoIndex = "requisicao_id-index"
	batchWriteLimit               = 25
)

type valorHistoricoItem struct {
	ID            string   `dynamodbav:"id"`
	RequisicaoID  string   `dynamodbav:"requisicao_id"`
	ValorAnterior *float64 `dynamodbav:"valor_anterior,omitempty"`
	ValorNovo     float64  `dynamodbav:"valor_novo"`
	AlteradoPor   string   `dynamodbav:"alterado_por"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// ValorHistoricoDynamoRepository persists price history entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requisicao_id-index (PK: requisicao_id)

type ValorHistoricoDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IValorHistoricoRepository = (*ValorHistoricoDynamoRepository)(nil)

func NewValorHistoricoDynamoRepository(ddb DynamoDBAPI, tableName string) *ValorHistoricoDynamoRepository {
	return &ValorHistoricoDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ValorHistoricoDynamoRepository) ListByRequisicaoID(ctx context.Context, requisicaoID string) ([]entities.ValorHistorico, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(valorHistoricoRequisicaoIndex),
		KeyConditionExpression: aws.String("requisicao_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requisicaoID},
		},
	})

	items := make([]entities.ValorHistorico, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "query valor historico for %s", requisicaoID)
		}
		for _, raw := range page.Items {
			var it valorHistoricoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal valor historico")
			}
			items = append(items, fromValorHistoricoItem(it))
		}
	}
	return items, nil
}

// DeleteByRequisicaoID removes every entry of one requisition in batches of 25.
func (r *ValorHistoricoDynamoRepository) DeleteByRequisicaoID(ctx context.Context, requisicaoID string) error {
	items, err := r.ListByRequisicaoID(ctx, requisicaoID)
	if err != nil {
		return err
	}

	for start := 0; start < len(items); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, h := range items[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: h.ID},
					},
				},
			})
		}
		if err := r.batchWrite(ctx, requests); err != nil {
			return errors.Wrapf(err, "delete valor historico for %s", requisicaoID)
		}
	}
	return nil
}

func (r *ValorHistoricoDynamoRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: requests}
	for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
		if attempt == 5 {
			return errors.New("unprocessed items left after retries")
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
	}
	return nil
}

func toValorHistoricoItem(h entities.ValorHistorico) valorHistoricoItem {
	return valorHistoricoItem{
		ID:            h.ID,
		RequisicaoID:  h.RequisicaoID,
		ValorAnterior: h.ValorAnterior,
		ValorNovo:     h.ValorNovo,
		AlteradoPor:   h.AlteradoPor,
		CreatedAt:     formatTime(h.CreatedAt),
	}
}

func fromValorHistoricoItem(it valorHistoricoItem) entities.ValorHistorico {
	return entities.ValorHistorico{
		ID:            it.ID,
		RequisicaoID:  it.RequisicaoID,
		ValorAnterior: it.ValorAnterior,
		ValorNovo:     it.ValorNovo,
		AlteradoPor:   it.AlteradoPor,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
