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

type requisicaoItem struct {
	ID         string `dynamodbav:"id"`
	Protocolo  string `dynamodbav:"protocolo"`
	Titulo     string `dynamodbav:"titulo"`
	Prioridade string `dynamodbav:"prioridade"`
	Status     string `dynamodbav:"status"`

	SolicitanteNome     string `dynamodbav:"solicitante_nome"`
	SolicitanteEmail    string `dynamodbav:"solicitante_email,omitempty"`
	SolicitanteTelefone string `dynamodbav:"solicitante_telefone,omitempty"`
	Setor               string `dynamodbav:"setor,omitempty"`
	Empresa             string `dynamodbav:"empresa,omitempty"`

	ValorOrcado    *float64 `dynamodbav:"valor_orcado,omitempty"`
	Valor          *float64 `dynamodbav:"valor,omitempty"`
	CentroCusto    *string  `dynamodbav:"centro_custo,omitempty"`
	FornecedorNome *string  `dynamodbav:"fornecedor_nome,omitempty"`
	CompradorNome  *string  `dynamodbav:"comprador_nome,omitempty"`
	CompradorID    *string  `dynamodbav:"comprador_id,omitempty"`

	PrevisaoEntrega *string `dynamodbav:"previsao_entrega,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
	AprovadoEm      *string `dynamodbav:"aprovado_em,omitempty"`
	AprovadoPor     *string `dynamodbav:"aprovado_por,omitempty"`
	CompradoEm      *string `dynamodbav:"comprado_em,omitempty"`
	RecebidoEm      *string `dynamodbav:"recebido_em,omitempty"`
	EntregueEm      *string `dynamodbav:"entregue_em,omitempty"`

	Justificativa       string  `dynamodbav:"justificativa"`
	Especificacoes      *string `dynamodbav:"especificacoes,omitempty"`
	MotivoRejeicao      *string `dynamodbav:"motivo_rejeicao,omitempty"`
	ObservacaoComprador *string `dynamodbav:"observacao_comprador,omitempty"`

	Anexos     []string `dynamodbav:"anexos,omitempty"`
	Orcamentos []string `dynamodbav:"orcamentos,omitempty"`
}

// RequisicaoDynamoRepository persists Requisicao entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Analytics reads the whole table through LoadAll, so there is no secondary index.
// Price changes are written together with their history row, so the repository also
// knows the valor historico table.

type RequisicaoDynamoRepository struct {
	ddb                 DynamoDBAPI
	tableName           string
	valorHistoricoTable string
}

var _ interfaces.IRequisicaoRepository = (*RequisicaoDynamoRepository)(nil)

func NewRequisicaoDynamoRepository(ddb DynamoDBAPI, tableName, valorHistoricoTable string) *RequisicaoDynamoRepository {
	return &RequisicaoDynamoRepository{ddb: ddb, tableName: tableName, valorHistoricoTable: valorHistoricoTable}
}

func (r *RequisicaoDynamoRepository) Create(ctx context.Context, req entities.Requisicao) (entities.Requisicao, error) {
	av, err := attributevalue.MarshalMap(toRequisicaoItem(req))
	if err != nil {
		return entities.Requisicao{}, errors.Wrap(err, "marshal requisicao")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Requisicao{}, errors.Wrapf(err, "put requisicao %s", req.ID)
	}
	return req, nil
}

func (r *RequisicaoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Requisicao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Requisicao{}, errors.Wrapf(err, "get requisicao %s", id)
	}
	if len(out.Item) == 0 {
		return entities.Requisicao{}, nil
	}

	var it requisicaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Requisicao{}, errors.Wrap(err, "unmarshal requisicao")
	}
	return fromRequisicaoItem(it), nil
}

// LoadAll scans every page of the table.
func (r *RequisicaoDynamoRepository) LoadAll(ctx context.Context) ([]entities.Requisicao, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.Requisicao
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "scan requisicoes")
		}
		for _, raw := range page.Items {
			var it requisicaoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal requisicao")
			}
			out = append(out, fromRequisicaoItem(it))
		}
	}
	return out, nil
}

// SaveTransition writes the status of next and its guarded fields, provided the stored
// status is still current.Status. Approval, purchase and receipt fields are only filled
// when absent.
func (r *RequisicaoDynamoRepository) SaveTransition(ctx context.Context, current, next entities.Requisicao) (entities.Requisicao, error) {
	u := newItemUpdate().
		set("status", stringAV(string(next.Status))).
		set("updated_at", stringAV(formatTime(next.UpdatedAt))).
		setOnce("aprovado_em", timePtrAV(next.AprovadoEm)).
		setOnce("aprovado_por", stringPtrAV(next.AprovadoPor)).
		setOnce("comprado_em", timePtrAV(next.CompradoEm)).
		setOnce("comprador_id", stringPtrAV(next.CompradorID)).
		setOnce("recebido_em", timePtrAV(next.RecebidoEm)).
		setOnce("entregue_em", timePtrAV(next.EntregueEm)).
		expect("status", stringAV(string(current.Status)))
	if next.MotivoRejeicao != nil {
		u.set("motivo_rejeicao", stringAV(*next.MotivoRejeicao))
	}
	return r.update(ctx, current.ID, u)
}

// SaveCompra writes the procurement fields of next. It fails with ErrConcurrentUpdate
// when the item changed since current was read.
func (r *RequisicaoDynamoRepository) SaveCompra(ctx context.Context, current, next entities.Requisicao) (entities.Requisicao, error) {
	u := newItemUpdate().
		set("updated_at", stringAV(formatTime(next.UpdatedAt))).
		setOrRemove("fornecedor_nome", stringPtrAV(next.FornecedorNome)).
		setOrRemove("comprador_nome", stringPtrAV(next.CompradorNome)).
		setOrRemove("centro_custo", stringPtrAV(next.CentroCusto)).
		setOrRemove("valor_orcado", floatPtrAV(next.ValorOrcado)).
		setOrRemove("observacao_comprador", stringPtrAV(next.ObservacaoComprador)).
		setOrRemove("previsao_entrega", timePtrAV(next.PrevisaoEntrega)).
		setOrRemove("orcamentos", stringListAV(next.Orcamentos))
	expectVersion(u, current)
	return r.update(ctx, current.ID, u)
}

// SaveValor commits the new valor of next and its history entry in one transaction.
// Neither is written when the item changed since current was read.
func (r *RequisicaoDynamoRepository) SaveValor(ctx context.Context, current, next entities.Requisicao, entry entities.ValorHistorico) (entities.Requisicao, error) {
	hist, err := attributevalue.MarshalMap(toValorHistoricoItem(entry))
	if err != nil {
		return entities.Requisicao{}, errors.Wrap(err, "marshal valor historico")
	}

	u := newItemUpdate().
		set("valor", floatPtrAV(next.Valor)).
		set("updated_at", stringAV(formatTime(next.UpdatedAt)))
	expectVersion(u, current)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": stringAV(current.ID),
				},
				UpdateExpression:                    aws.String(u.expression()),
				ConditionExpression:                 aws.String(u.condition()),
				ExpressionAttributeNames:            u.names,
				ExpressionAttributeValues:           u.values,
				ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
			}},
			{Put: &types.Put{
				TableName:           aws.String(r.valorHistoricoTable),
				Item:                hist,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		if old, ok := transactConditionFailure(err, 0); ok {
			if len(old) == 0 {
				return entities.Requisicao{}, nil
			}
			return entities.Requisicao{}, interfaces.ErrConcurrentUpdate
		}
		return entities.Requisicao{}, errors.Wrapf(err, "save valor of requisicao %s", current.ID)
	}
	return next, nil
}

// expectVersion guards a write on the status and updated_at that were read.
func expectVersion(u *itemUpdate, current entities.Requisicao) {
	u.expect("status", stringAV(string(current.Status))).
		expect("updated_at", stringAV(formatTime(current.UpdatedAt)))
}

func (r *RequisicaoDynamoRepository) update(ctx context.Context, id string, u *itemUpdate) (entities.Requisicao, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression:                 aws.String(u.condition()),
		UpdateExpression:                    aws.String(u.expression()),
		ExpressionAttributeNames:            u.names,
		ExpressionAttributeValues:           u.values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailure(err); ok {
			if len(old) == 0 {
				return entities.Requisicao{}, nil
			}
			return entities.Requisicao{}, interfaces.ErrConcurrentUpdate
		}
		return entities.Requisicao{}, errors.Wrapf(err, "update requisicao %s", id)
	}
	if len(out.Attributes) == 0 {
		return entities.Requisicao{}, nil
	}

	var it requisicaoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Requisicao{}, errors.Wrap(err, "unmarshal requisicao")
	}
	return fromRequisicaoItem(it), nil
}

func (r *RequisicaoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "delete requisicao %s", id)
	}
	return nil
}

func toRequisicaoItem(r entities.Requisicao) requisicaoItem {
	return requisicaoItem{
		ID:                  r.ID,
		Protocolo:           r.Protocolo,
		Titulo:              r.Titulo,
		Prioridade:          string(r.Prioridade),
		Status:              string(r.Status),
		SolicitanteNome:     r.SolicitanteNome,
		SolicitanteEmail:    r.SolicitanteEmail,
		SolicitanteTelefone: r.SolicitanteTelefone,
		Setor:               r.Setor,
		Empresa:             r.Empresa,
		ValorOrcado:         r.ValorOrcado,
		Valor:               r.Valor,
		CentroCusto:         r.CentroCusto,
		FornecedorNome:      r.FornecedorNome,
		CompradorNome:       r.CompradorNome,
		CompradorID:         r.CompradorID,
		PrevisaoEntrega:     formatTimePtr(r.PrevisaoEntrega),
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
		AprovadoEm:          formatTimePtr(r.AprovadoEm),
		AprovadoPor:         r.AprovadoPor,
		CompradoEm:          formatTimePtr(r.CompradoEm),
		RecebidoEm:          formatTimePtr(r.RecebidoEm),
		EntregueEm:          formatTimePtr(r.EntregueEm),
		Justificativa:       r.Justificativa,
		Especificacoes:      r.Especificacoes,
		MotivoRejeicao:      r.MotivoRejeicao,
		ObservacaoComprador: r.ObservacaoComprador,
		Anexos:              r.Anexos,
		Orcamentos:          r.Orcamentos,
	}
}

func fromRequisicaoItem(it requisicaoItem) entities.Requisicao {
	return entities.Requisicao{
		ID:                  it.ID,
		Protocolo:           it.Protocolo,
		Titulo:              it.Titulo,
		Prioridade:          entities.Prioridade(it.Prioridade),
		Status:              entities.RequisicaoStatus(it.Status),
		SolicitanteNome:     it.SolicitanteNome,
		SolicitanteEmail:    it.SolicitanteEmail,
		SolicitanteTelefone: it.SolicitanteTelefone,
		Setor:               it.Setor,
		Empresa:             it.Empresa,
		ValorOrcado:         it.ValorOrcado,
		Valor:               it.Valor,
		CentroCusto:         it.CentroCusto,
		FornecedorNome:      it.FornecedorNome,
		CompradorNome:       it.CompradorNome,
		CompradorID:         it.CompradorID,
		PrevisaoEntrega:     parseTimePtr(it.PrevisaoEntrega),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		AprovadoEm:          parseTimePtr(it.AprovadoEm),
		AprovadoPor:         it.AprovadoPor,
		CompradoEm:          parseTimePtr(it.CompradoEm),
		RecebidoEm:          parseTimePtr(it.RecebidoEm),
		EntregueEm:          parseTimePtr(it.EntregueEm),
		Justificativa:       it.Justificativa,
		Especificacoes:      it.Especificacoes,
		MotivoRejeicao:      it.MotivoRejeicao,
		ObservacaoComprador: it.ObservacaoComprador,
		Anexos:              it.Anexos,
		Orcamentos:          it.Orcamentos,
	}
}
