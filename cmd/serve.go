package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/melodygen/constants"
	"github.com/jsphweid/melodygen/melody"
	"github.com/jsphweid/melodygen/midi"
	"github.com/jsphweid/melodygen/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves melodies over HTTP",
		Long:  `Serves generated melodies as JSON on POST /melody and as MIDI files on GET /melody.mid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = constants.GetPort()
			}
			slog.Info("listening", "port", port)
			return http.ListenAndServe(":"+port, NewRouter(root.tables))
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (env PORT, default "+constants.DefaultPort+")")
	return cmd
}

// NewRouter serves melodies generated from t. Each request gets its own
// generator so requests never share a random source.
func NewRouter(t *model.Tables) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/melody", handleMelody(t)).Methods(http.MethodPost)
	router.HandleFunc("/melody.mid", handleMelodyFile(t)).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func handleMelody(t *model.Tables) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.MelodyRequest
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
			return
		}

		m, err := generateFor(t, input)
		if err != nil {
			writeInputError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.MelodyResponse{
			Id:     uuid.New().String(),
			Melody: m,
			Notes:  m.Notes(),
		})
	}
}

func handleMelodyFile(t *model.Tables) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		input := model.MelodyRequest{Meter: q.Get("meter"), Key: q.Get("key")}
		if s := q.Get("seed"); s != "" {
			seed, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "seed must be an unsigned integer")
				return
			}
			input.Seed = &seed
		}

		m, err := generateFor(t, input)
		if err != nil {
			writeInputError(w, err)
			return
		}

		// encode fully before writing so errors can still set the status
		var buf bytes.Buffer
		meter, _ := t.Meter(m.Meter)
		if err := midi.Write(&buf, m, t.Pitches, meter, midi.DefaultOptions()); err != nil {
			slog.Error("could not encode melody", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "audio/midi")
		w.Header().Set("Content-Disposition", `attachment; filename="`+constants.DefaultOutputPath+`"`)
		w.Write(buf.Bytes())
	}
}

func generateFor(t *model.Tables, input model.MelodyRequest) (model.Melody, error) {
	if err := t.CheckInput(input.Meter, input.Key); err != nil {
		return model.Melody{}, err
	}
	src := melody.RandomSource()
	if input.Seed != nil {
		src = melody.NewSource(*input.Seed)
	}
	return melody.New(t, src).Generate(input.Meter, input.Key)
}

func writeInputError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrUnknownMeter) || errors.Is(err, model.ErrUnknownKey) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("could not generate melody", "err", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}
