package csvio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
)

const batchHeader = "age;gender;country;category;credit_score;tenure;balance;estimated_salary;num_of_products;has_credit_card;is_active_member;complain;satisfaction_score;point_earned"

func TestReadBatch(t *testing.T) {
	input := batchHeader + "\n" +
		"35;Homme;France;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500\n" +
		"42;Femme;Allemagne;GOLD;720;8;120000;85000;3;Oui;Oui;Non;5;2800\n"

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Empty(t, badRows)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 35, rows[0].Attributes.Age)
	assert.Equal(t, "France", rows[0].Attributes.Country)

	assert.Equal(t, 2, rows[1].Line)
	assert.Equal(t, "Allemagne", rows[1].Attributes.Country)
	assert.Equal(t, 120000.0, rows[1].Attributes.Balance)
}

func TestReadBatch_ColumnOrderIsFree(t *testing.T) {
	input := "country;age;gender;category;credit_score;tenure;balance;estimated_salary;num_of_products;has_credit_card;is_active_member;complain;satisfaction_score;point_earned\n" +
		"France;35;Homme;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500\n"

	rows, _, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "France", rows[0].Attributes.Country)
	assert.Equal(t, 35, rows[0].Attributes.Age)
}

func TestReadBatch_ExtraColumnsIgnored(t *testing.T) {
	input := batchHeader + ";commentaire\n" +
		"35;Homme;France;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500;ignorer\n"

	rows, _, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadBatch_MissingColumn(t *testing.T) {
	input := "age;gender;country\n35;Homme;France\n"

	_, _, err := csvio.ReadBatch(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
	assert.Contains(t, err.Error(), "category")
}

func TestReadBatch_BadCellFailsRowNotFile(t *testing.T) {
	input := batchHeader + "\n" +
		"35;Homme;France;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500\n" +
		"quarante;Femme;Allemagne;GOLD;720;8;120000;85000;3;Oui;Oui;Non;5;2800\n" +
		"28;Homme;Espagne;RUBIS;580;2;25000;45000;1;Non;Non;Oui;2;200\n"

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 3, rows[1].Line, "line numbering counts bad rows too")

	require.Len(t, badRows, 1)
	assert.Equal(t, 2, badRows[0].Line)
	assert.Contains(t, badRows[0].Messages[0], "age")
}

func TestReadBatch_WrongFieldCountFailsRowNotFile(t *testing.T) {
	input := batchHeader + "\n" +
		"35;Homme;France;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500\n" +
		"42;Femme;Allemagne;GOLD;720;8;120000;85000;3;Oui;Oui;Non;5\n" + // 13 fields
		"28;Homme;Espagne;RUBIS;580;2;25000;45000;1;Non;Non;Oui;2;200;extra\n" + // 15 fields
		"31;Homme;Allemagne;SILVER;690;6;95000;70000;2;Oui;Non;Non;3;1200\n"

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)

	require.Len(t, badRows, 2)
	assert.Equal(t, 2, badRows[0].Line)
	assert.Contains(t, badRows[0].Messages[0], "expected 14 fields, got 13")
	assert.Equal(t, 3, badRows[1].Line)
	assert.Contains(t, badRows[1].Messages[0], "expected 14 fields, got 15")
}

func TestReadBatch_QuotingErrorFailsRowNotFile(t *testing.T) {
	input := batchHeader + "\n" +
		"35;Homme;\"Fra\"nce;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500\n" +
		"42;Femme;Allemagne;GOLD;720;8;120000;85000;3;Oui;Oui;Non;5;2800\n"

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Line)
	require.Len(t, badRows, 1)
	assert.Equal(t, 1, badRows[0].Line)
}

func TestReadBatch_EmptyFile(t *testing.T) {
	_, _, err := csvio.ReadBatch(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestReadBatch_HeaderOnly(t *testing.T) {
	_, _, err := csvio.ReadBatch(strings.NewReader(batchHeader + "\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestReadBatch_RoundTripsTemplate(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, csvio.WriteTemplate(&sb))

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Empty(t, badRows, "the shipped template parses cleanly")
}
