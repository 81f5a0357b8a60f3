package iex_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmitriykara/StocksApp/internal/provider"
	"github.com/dmitriykara/StocksApp/internal/provider/iex"
)

// pngMagic is the PNG file signature, enough to stand in for a logo body.
const pngMagic = "\x89PNG\r\n\x1a\n"

func TestLogo(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: the symbol keeps its casing and no token is sent
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "storage.googleapis.com", req.URL.Host)
			require.Equal(t, "/iex/api/logos/BRK.b.png", req.URL.Path)
			require.Empty(t, req.URL.RawQuery)
			return rawResponse(http.StatusOK, pngMagic), nil
		}).
		Times(1)

	// Arrange: setup a new IEX client
	client, err := iex.NewClient("test-token", iex.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: call Logo
	data, err := client.Logo(t.Context(), "BRK.b")

	// Assert: raw bytes are returned untouched
	require.NoError(t, err)
	require.Equal(t, []byte(pngMagic), data)
}

func TestLogo_PreservesCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/aapl.png", iex.LogoPath("aapl"))
	require.Equal(t, "/AAPL.png", iex.LogoPath("AAPL"))
}

func TestLogo_WithLogoBaseURL(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "http://localhost:9000/logos/MSFT.png", req.URL.String())
			return rawResponse(http.StatusOK, pngMagic), nil
		}).
		Times(1)

	client, err := iex.NewClient("", iex.WithHTTPClient(httpClient), iex.WithLogoBaseURL("http://localhost:9000/logos"))
	require.NoError(t, err)

	// Act
	_, err = client.Logo(t.Context(), "MSFT")

	// Assert
	require.NoError(t, err)
}

func TestLogo_EmptyBody(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(rawResponse(http.StatusOK, ""), nil).
		Times(1)

	client, err := iex.NewClient("", iex.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act
	data, err := client.Logo(t.Context(), "AAPL")

	// Assert
	require.ErrorIs(t, err, provider.ErrNetwork)
	require.Nil(t, data)
}
