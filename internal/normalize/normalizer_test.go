package normalize

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
	"github.com/joseph-ayodele/specials-tracker/internal/fetch"
)

type fakeFetcher struct {
	resp  *fetch.Response
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*fetch.Response, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeRenderer struct {
	text  string
	err   error
	calls []string
}

func (r *fakeRenderer) Render(_ context.Context, url string) (string, error) {
	r.calls = append(r.calls, url)
	return r.text, r.err
}

type fakePDF struct {
	text string
	err  error
	got  []byte
}

func (p *fakePDF) Text(_ context.Context, data []byte) (string, error) {
	p.got = data
	return p.text, p.err
}

func TestNormalizeImage(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	f := &fakeFetcher{resp: &fetch.Response{Body: raw, ContentType: "image/png; charset=binary"}}
	n := NewNormalizer(f, &fakeRenderer{}, &fakePDF{}, nil)

	in, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/board.PNG"})
	require.NoError(t, err)
	assert.Equal(t, entity.InputImage, in.Kind)
	assert.Equal(t, "image/png", in.MIMEType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), in.Base64Payload)
	assert.Equal(t, "data:image/png;base64,"+in.Base64Payload, in.DataURL())
	assert.Equal(t, []string{"https://x.com/board.PNG"}, f.calls)
}

func TestNormalizeImageDefaultsToJPEG(t *testing.T) {
	for _, ct := range []string{"", "application/octet-stream", "not a media type;;"} {
		f := &fakeFetcher{resp: &fetch.Response{Body: []byte("img"), ContentType: ct}}
		n := NewNormalizer(f, &fakeRenderer{}, &fakePDF{}, nil)

		in, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/hours.jpg"})
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", in.MIMEType, ct)
	}
}

func TestNormalizeImageFetchErrorIsIngestionFailure(t *testing.T) {
	f := &fakeFetcher{err: &fetch.StatusError{URL: "https://x.com/hours.jpg", StatusCode: 403}}
	r := &fakeRenderer{}
	n := NewNormalizer(f, r, &fakePDF{}, nil)

	in, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/hours.jpg"})
	require.Error(t, err)
	assert.Equal(t, entity.NormalizedInput{}, in)
	assert.True(t, errors.Is(err, common.ErrIngestion))

	var inf *common.IngestionFailure
	require.True(t, errors.As(err, &inf))
	assert.Equal(t, "https://x.com/hours.jpg", inf.Source)

	var se *fetch.StatusError
	assert.True(t, errors.As(err, &se))
	assert.Empty(t, r.calls)
}

func TestNormalizePDF(t *testing.T) {
	body := []byte("%PDF-1.7")
	f := &fakeFetcher{resp: &fetch.Response{Body: body, ContentType: "application/pdf"}}
	p := &fakePDF{text: "HAPPY HOUR\r\n3-6pm\n\n\n\n$4 wells\n"}
	n := NewNormalizer(f, &fakeRenderer{}, p, nil)

	in, err := n.Normalize(context.Background(), entity.Source{URL: "https://red-madison.com/menu.pdf"})
	require.NoError(t, err)
	assert.Equal(t, entity.InputText, in.Kind)
	assert.Equal(t, "HAPPY HOUR\n3-6pm\n\n$4 wells", in.Content)
	assert.Equal(t, body, p.got)
}

func TestNormalizePDFParseError(t *testing.T) {
	f := &fakeFetcher{resp: &fetch.Response{Body: []byte("junk")}}
	n := NewNormalizer(f, &fakeRenderer{}, &fakePDF{err: errors.New("bad xref")}, nil)

	_, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/menu.pdf"})
	assert.ErrorIs(t, err, common.ErrIngestion)
}

func TestNormalizeWebPage(t *testing.T) {
	f := &fakeFetcher{}
	r := &fakeRenderer{text: "Monday $2 tacos"}
	n := NewNormalizer(f, r, &fakePDF{}, nil)

	in, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/specials/"})
	require.NoError(t, err)
	assert.Equal(t, entity.TextInput("Monday $2 tacos"), in)
	assert.Equal(t, []string{"https://x.com/specials/"}, r.calls)
	assert.Empty(t, f.calls)
}

func TestNormalizeWebPageRenderError(t *testing.T) {
	n := NewNormalizer(&fakeFetcher{}, &fakeRenderer{err: context.DeadlineExceeded}, &fakePDF{}, nil)

	_, err := n.Normalize(context.Background(), entity.Source{URL: "https://x.com/specials/"})
	assert.ErrorIs(t, err, common.ErrIngestion)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNormalizeHonoursKindOverride(t *testing.T) {
	f := &fakeFetcher{resp: &fetch.Response{Body: []byte("img"), ContentType: "image/webp"}}
	r := &fakeRenderer{}
	n := NewNormalizer(f, r, &fakePDF{}, nil)

	in, err := n.Normalize(context.Background(), entity.Source{URL: "https://cdn.x.com/asset?id=42", Kind: constants.Image})
	require.NoError(t, err)
	assert.Equal(t, entity.InputImage, in.Kind)
	assert.Equal(t, "image/webp", in.MIMEType)
	assert.Empty(t, r.calls)
}

func TestNormalizeLogsVenueFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	n := NewNormalizer(&fakeFetcher{}, &fakeRenderer{text: "Wings"}, &fakePDF{}, logger)

	ctx := common.WithVenue(context.Background(), "Buck and Badger")
	_, err := n.Normalize(ctx, entity.Source{URL: "https://buck.com/"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"venue":"Buck and Badger"`)
}
